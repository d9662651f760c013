package api

import (
	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/handlers"
)

func registerProjectRoutes(public, admin *gin.RouterGroup, h *handlers.ProjectHandler) {
	public.GET("/projects", h.List)
	public.GET("/projects/:id", h.Get)

	projects := admin.Group("/projects")
	{
		projects.POST("", h.Create)
		projects.PUT("/:id", h.Update)
		projects.DELETE("/:id", h.Delete)
	}
}
