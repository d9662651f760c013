package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/services"
	"github.com/bolajio/portfolio-api/pkg/response"
)

// ContactHandler exposes the contact form endpoint.
type ContactHandler struct {
	svc *services.ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(svc *services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// POST /api/contact
func (h *ContactHandler) Send(c *gin.Context) {
	var req services.ContactInput
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.Send(requestContext(c), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Message sent. Thanks for reaching out!"})
}
