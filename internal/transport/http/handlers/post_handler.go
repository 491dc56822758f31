package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/example/job-board/internal/errors"
	"github.com/example/job-board/internal/service"
)

type PostHandler struct {
	service *service.PostService
	logger  *zap.Logger
}

func NewPostHandler(svc *service.PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{service: svc, logger: logger}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if _, err := h.service.CreatePost(c.Request.Context(), payload); err != nil {
		h.writeError(c, "Failed to save job posting", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}
	res, err := h.service.ListPosts(c.Request.Context(), page)
	if err != nil {
		h.writeError(c, "Failed to fetch job postings", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	post, err := h.service.GetPost(c.Request.Context(), uint(id))
	if err != nil {
		h.writeError(c, "Failed to fetch job posting", err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// writeError maps a domain error to its status. Server-side failures carry the
// store's operation summary in details, never the raw driver message.
func (h *PostHandler) writeError(c *gin.Context, message string, err error) {
	de, ok := apperrors.As(err)
	if !ok {
		de = apperrors.Internal("internal error", err)
	}

	switch de.Type {
	case apperrors.ErrTypeInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": de.Message})
	case apperrors.ErrTypeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	default:
		h.logger.Error(message,
			zap.String("path", c.FullPath()),
			zap.String("type", string(de.Type)),
			zap.String("cause", de.Details()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": de.Message})
	}
}
