package api

import (
	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/handlers"
)

func registerUploadRoutes(admin *gin.RouterGroup, h *handlers.UploadHandler) {
	admin.POST("/uploads", h.Upload)
}
