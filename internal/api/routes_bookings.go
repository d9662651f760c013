package api

import (
	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/handlers"
)

func registerBookingRoutes(public, admin *gin.RouterGroup, h *handlers.BookingHandler) {
	bookings := public.Group("/bookings")
	{
		bookings.GET("/availability", h.ListAvailability)
		bookings.POST("", h.CreateBooking)
	}

	admin.GET("/bookings", h.ListBookings)
	admin.PATCH("/bookings/:id/status", h.UpdateStatus)
	admin.POST("/availability", h.CreateAvailability)
	admin.DELETE("/availability/:id", h.DeleteAvailability)
}
