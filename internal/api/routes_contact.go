package api

import (
	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/handlers"
)

func registerContactRoutes(public *gin.RouterGroup, h *handlers.ContactHandler) {
	public.POST("/contact", h.Send)
}
