package api

import (
	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/handlers"
)

func registerAboutRoutes(public, admin *gin.RouterGroup, h *handlers.AboutHandler) {
	public.GET("/about", h.Get)

	about := admin.Group("/about")
	{
		about.PUT("/profile", h.UpdateProfile)
		about.POST("/skills", h.AddSkill)
		about.DELETE("/skills/:id", h.DeleteSkill)
		about.POST("/tools", h.AddTool)
		about.DELETE("/tools/:id", h.DeleteTool)
		about.POST("/experiences", h.AddExperience)
		about.PUT("/experiences/:id", h.UpdateExperience)
		about.DELETE("/experiences/:id", h.DeleteExperience)
	}
}
