package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/services"
	"github.com/bolajio/portfolio-api/pkg/response"
)

// BookingHandler exposes availability and meeting request endpoints.
type BookingHandler struct {
	svc *services.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// GET /api/bookings/availability
func (h *BookingHandler) ListAvailability(c *gin.Context) {
	windows, err := h.svc.ListAvailability(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, windows)
}

// POST /api/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req services.CreateBookingInput
	if !bindAndValidate(c, &req) {
		return
	}

	booking, err := h.svc.CreateBooking(requestContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, booking)
}

// GET /api/admin/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.svc.ListBookings(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

type bookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PATCH /api/admin/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req bookingStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}

	booking, err := h.svc.UpdateBookingStatus(requestContext(c), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, booking)
}

// POST /api/admin/availability
func (h *BookingHandler) CreateAvailability(c *gin.Context) {
	var req services.CreateAvailabilityInput
	if !bindAndValidate(c, &req) {
		return
	}

	window, err := h.svc.CreateAvailability(requestContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, window)
}

// DELETE /api/admin/availability/:id
func (h *BookingHandler) DeleteAvailability(c *gin.Context) {
	if err := h.svc.DeleteAvailability(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Availability window deleted"})
}
