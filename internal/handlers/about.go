package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/services"
	"github.com/bolajio/portfolio-api/pkg/response"
)

// AboutHandler exposes the about-page endpoints.
type AboutHandler struct {
	svc *services.AboutService
}

// NewAboutHandler constructs an AboutHandler.
func NewAboutHandler(svc *services.AboutService) *AboutHandler {
	return &AboutHandler{svc: svc}
}

// GET /api/about
func (h *AboutHandler) Get(c *gin.Context) {
	data, err := h.svc.Get(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, data)
}

// PUT /api/admin/about/profile
func (h *AboutHandler) UpdateProfile(c *gin.Context) {
	var req services.UpdateProfileInput
	if !bindAndValidate(c, &req) {
		return
	}

	profile, err := h.svc.UpdateProfile(requestContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// POST /api/admin/about/skills
func (h *AboutHandler) AddSkill(c *gin.Context) {
	var req services.NamedIconInput
	if !bindAndValidate(c, &req) {
		return
	}

	skill, err := h.svc.AddSkill(requestContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, skill)
}

// DELETE /api/admin/about/skills/:id
func (h *AboutHandler) DeleteSkill(c *gin.Context) {
	if err := h.svc.DeleteSkill(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Skill deleted"})
}

// POST /api/admin/about/tools
func (h *AboutHandler) AddTool(c *gin.Context) {
	var req services.NamedIconInput
	if !bindAndValidate(c, &req) {
		return
	}

	tool, err := h.svc.AddTool(requestContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, tool)
}

// DELETE /api/admin/about/tools/:id
func (h *AboutHandler) DeleteTool(c *gin.Context) {
	if err := h.svc.DeleteTool(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Tool deleted"})
}

// POST /api/admin/about/experiences
func (h *AboutHandler) AddExperience(c *gin.Context) {
	var req services.ExperienceInput
	if !bindAndValidate(c, &req) {
		return
	}

	experience, err := h.svc.AddExperience(requestContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, experience)
}

// PUT /api/admin/about/experiences/:id
func (h *AboutHandler) UpdateExperience(c *gin.Context) {
	var req services.UpdateExperienceInput
	if !bindAndValidate(c, &req) {
		return
	}

	experience, err := h.svc.UpdateExperience(requestContext(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, experience)
}

// DELETE /api/admin/about/experiences/:id
func (h *AboutHandler) DeleteExperience(c *gin.Context) {
	if err := h.svc.DeleteExperience(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Experience deleted"})
}
