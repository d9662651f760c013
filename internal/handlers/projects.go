package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/services"
	"github.com/bolajio/portfolio-api/pkg/response"
)

// ProjectHandler exposes the portfolio project endpoints.
type ProjectHandler struct {
	svc *services.ProjectService
}

// NewProjectHandler constructs a ProjectHandler.
func NewProjectHandler(svc *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.svc.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, projects)
}

// GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.svc.Get(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, project)
}

// POST /api/admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectInput
	if !bindAndValidate(c, &req) {
		return
	}

	project, err := h.svc.Create(requestContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, project)
}

// PUT /api/admin/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req services.UpdateProjectInput
	if !bindAndValidate(c, &req) {
		return
	}

	project, err := h.svc.Update(requestContext(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, project)
}

// DELETE /api/admin/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Project deleted"})
}
