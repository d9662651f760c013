package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bolajio/portfolio-api/internal/models"
	appErrors "github.com/bolajio/portfolio-api/pkg/errors"
)

// ProjectService manages portfolio project entries.
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService constructs a ProjectService.
func NewProjectService(db *gorm.DB) (*ProjectService, error) {
	if db == nil {
		return nil, errors.New("project service: db is required")
	}
	return &ProjectService{db: db}, nil
}

// List returns all projects ordered for display.
func (s *ProjectService) List(ctx context.Context) ([]ProjectView, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).
		Order("display_order ASC, created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("project service: list: %w", err)
	}

	views := make([]ProjectView, 0, len(projects))
	for _, project := range projects {
		views = append(views, newProjectView(project))
	}
	return views, nil
}

// Get fetches a single project by id.
func (s *ProjectService) Get(ctx context.Context, id string) (*ProjectView, error) {
	project, err := s.findProject(ctx, id)
	if err != nil {
		return nil, err
	}
	view := newProjectView(*project)
	return &view, nil
}

// CreateProjectInput captures the fields accepted when creating a project.
type CreateProjectInput struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Role          string   `json:"role"`
	TechStack     []string `json:"tech_stack"`
	Tools         []string `json:"tools"`
	LiveURL       string   `json:"live_url"`
	GithubURL     string   `json:"github_url"`
	CaseStudyURL  string   `json:"case_study_url"`
	ImageURL      string   `json:"image_url"`
	Duration      string   `json:"duration"`
	Cost          *float64 `json:"cost"`
	Collaborators string   `json:"collaborators"`
	DisplayOrder  int      `json:"display_order"`
}

// Create stores a new project.
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*ProjectView, error) {
	project := models.Project{
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		Role:          input.Role,
		TechStack:     strings.Join(input.TechStack, ","),
		Tools:         strings.Join(input.Tools, ","),
		LiveURL:       input.LiveURL,
		GithubURL:     input.GithubURL,
		CaseStudyURL:  input.CaseStudyURL,
		ImageURL:      input.ImageURL,
		Duration:      input.Duration,
		Cost:          input.Cost,
		Collaborators: input.Collaborators,
		DisplayOrder:  input.DisplayOrder,
	}
	if project.Title == "" {
		return nil, appErrors.NewBadRequest("title is required")
	}

	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, fmt.Errorf("project service: create: %w", err)
	}

	view := newProjectView(project)
	return &view, nil
}

// UpdateProjectInput captures the optional fields of a partial update.
type UpdateProjectInput struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Role          *string   `json:"role"`
	TechStack     *[]string `json:"tech_stack"`
	Tools         *[]string `json:"tools"`
	LiveURL       *string   `json:"live_url"`
	GithubURL     *string   `json:"github_url"`
	CaseStudyURL  *string   `json:"case_study_url"`
	ImageURL      *string   `json:"image_url"`
	Duration      *string   `json:"duration"`
	Cost          *float64  `json:"cost"`
	Collaborators *string   `json:"collaborators"`
	DisplayOrder  *int      `json:"display_order"`
}

// Update applies the provided fields to an existing project.
func (s *ProjectService) Update(ctx context.Context, id string, input UpdateProjectInput) (*ProjectView, error) {
	project, err := s.findProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		project.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Role != nil {
		project.Role = *input.Role
	}
	if input.TechStack != nil {
		project.TechStack = strings.Join(*input.TechStack, ",")
	}
	if input.Tools != nil {
		project.Tools = strings.Join(*input.Tools, ",")
	}
	if input.LiveURL != nil {
		project.LiveURL = *input.LiveURL
	}
	if input.GithubURL != nil {
		project.GithubURL = *input.GithubURL
	}
	if input.CaseStudyURL != nil {
		project.CaseStudyURL = *input.CaseStudyURL
	}
	if input.ImageURL != nil {
		project.ImageURL = *input.ImageURL
	}
	if input.Duration != nil {
		project.Duration = *input.Duration
	}
	if input.Cost != nil {
		project.Cost = input.Cost
	}
	if input.Collaborators != nil {
		project.Collaborators = *input.Collaborators
	}
	if input.DisplayOrder != nil {
		project.DisplayOrder = *input.DisplayOrder
	}

	if err := s.db.WithContext(ctx).Save(project).Error; err != nil {
		return nil, fmt.Errorf("project service: update: %w", err)
	}

	view := newProjectView(*project)
	return &view, nil
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	project, err := s.findProject(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(project).Error; err != nil {
		return fmt.Errorf("project service: delete: %w", err)
	}
	return nil
}

func (s *ProjectService) findProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Project not found")
		}
		return nil, fmt.Errorf("project service: find: %w", err)
	}
	return &project, nil
}
