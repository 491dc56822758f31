package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/job-board/internal/backend"
	"github.com/example/job-board/internal/service"
	"github.com/example/job-board/internal/transport/http/handlers"
)

type Router = *gin.Engine

func NewRouter(svc *service.PostService, sel *backend.Selection, logger *zap.Logger) Router {
	if mode := gin.Mode(); mode == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(RequestID(), AccessLog(logger), gin.Recovery())

	status := handlers.NewStatusHandler(sel.Backend(), sel.Degraded)
	h := handlers.NewPostHandler(svc, logger)

	r.GET("/", status.Status)
	r.POST("/posts", h.CreatePost)
	r.GET("/posts", h.ListPosts)
	r.GET("/posts/:id", h.GetPost)

	return r
}
