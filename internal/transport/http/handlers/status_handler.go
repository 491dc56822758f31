package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	backend  string
	degraded bool
}

func NewStatusHandler(backend string, degraded bool) *StatusHandler {
	return &StatusHandler{backend: backend, degraded: degraded}
}

func (h *StatusHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "job board API running on " + h.backend,
		"backend":  h.backend,
		"degraded": h.degraded,
	})
}
