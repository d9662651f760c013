package api

import (
	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/handlers"
)

func registerAuthRoutes(public *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := public.Group("/auth")
	{
		auth.GET("/check-setup", h.CheckSetup)
		auth.POST("/register", h.Register)
		auth.POST("/verify-otp", h.VerifyOTP)
		auth.POST("/login", h.Login)
	}
}
