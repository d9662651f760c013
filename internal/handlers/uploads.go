package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/services"
	appErrors "github.com/bolajio/portfolio-api/pkg/errors"
	"github.com/bolajio/portfolio-api/pkg/response"
)

// UploadHandler accepts multipart file uploads from the admin panel.
type UploadHandler struct {
	svc *services.UploadService
}

// NewUploadHandler constructs an UploadHandler.
func NewUploadHandler(svc *services.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// POST /api/admin/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.NewBadRequest("a file field is required"))
		return
	}

	src, err := header.Open()
	if err != nil {
		response.Error(c, appErrors.NewBadRequest("could not read uploaded file"))
		return
	}
	defer src.Close()

	url, err := h.svc.Save(header.Filename, header.Size, src)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"url": url})
}
