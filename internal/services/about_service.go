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

// DefaultBio seeds the about page before the admin writes a real one.
const DefaultBio = "Welcome to my page. Edit this bio in the admin panel."

// AboutService manages the about page: bio, skills, tools, and work history.
type AboutService struct {
	db *gorm.DB
}

// NewAboutService constructs an AboutService.
func NewAboutService(db *gorm.DB) (*AboutService, error) {
	if db == nil {
		return nil, errors.New("about service: db is required")
	}
	return &AboutService{db: db}, nil
}

// AboutData bundles the full about-page payload.
type AboutData struct {
	Bio             string                  `json:"bio"`
	SpotifyURL      string                  `json:"spotify_url"`
	Skills          []models.Skill          `json:"skills"`
	Tools           []models.Tool           `json:"tools"`
	WorkExperiences []models.WorkExperience `json:"work_experiences"`
}

// Get assembles the about page, creating the default profile row when none
// exists yet.
func (s *AboutService) Get(ctx context.Context) (*AboutData, error) {
	profile, err := s.profile(ctx)
	if err != nil {
		return nil, err
	}

	var skills []models.Skill
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("about service: list skills: %w", err)
	}

	var tools []models.Tool
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&tools).Error; err != nil {
		return nil, fmt.Errorf("about service: list tools: %w", err)
	}

	var experiences []models.WorkExperience
	if err := s.db.WithContext(ctx).
		Order("display_order ASC, created_at DESC").
		Find(&experiences).Error; err != nil {
		return nil, fmt.Errorf("about service: list experiences: %w", err)
	}

	return &AboutData{
		Bio:             profile.Bio,
		SpotifyURL:      profile.SpotifyURL,
		Skills:          skills,
		Tools:           tools,
		WorkExperiences: experiences,
	}, nil
}

func (s *AboutService) profile(ctx context.Context) (*models.AboutProfile, error) {
	var profile models.AboutProfile
	err := s.db.WithContext(ctx).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("about service: load profile: %w", err)
	}

	profile = models.AboutProfile{Bio: DefaultBio}
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("about service: create profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfileInput captures the optional profile fields.
type UpdateProfileInput struct {
	Bio        *string `json:"bio"`
	SpotifyURL *string `json:"spotify_url"`
}

// UpdateProfile applies the provided fields to the profile row.
func (s *AboutService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*models.AboutProfile, error) {
	profile, err := s.profile(ctx)
	if err != nil {
		return nil, err
	}

	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.SpotifyURL != nil {
		profile.SpotifyURL = *input.SpotifyURL
	}

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, fmt.Errorf("about service: update profile: %w", err)
	}
	return profile, nil
}

// NamedIconInput captures a skill or tool entry.
type NamedIconInput struct {
	Name     string `json:"name" validate:"required"`
	IconName string `json:"icon_name" validate:"required"`
}

// AddSkill stores a new skill.
func (s *AboutService) AddSkill(ctx context.Context, input NamedIconInput) (*models.Skill, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.IconName) == "" {
		return nil, appErrors.NewBadRequest("name and icon_name are required")
	}

	skill := models.Skill{Name: name, IconName: strings.TrimSpace(input.IconName)}
	if err := s.db.WithContext(ctx).Create(&skill).Error; err != nil {
		return nil, fmt.Errorf("about service: add skill: %w", err)
	}
	return &skill, nil
}

// DeleteSkill removes a skill.
func (s *AboutService) DeleteSkill(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Skill{})
	if result.Error != nil {
		return fmt.Errorf("about service: delete skill: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFound("Skill not found")
	}
	return nil
}

// AddTool stores a new tool.
func (s *AboutService) AddTool(ctx context.Context, input NamedIconInput) (*models.Tool, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.IconName) == "" {
		return nil, appErrors.NewBadRequest("name and icon_name are required")
	}

	tool := models.Tool{Name: name, IconName: strings.TrimSpace(input.IconName)}
	if err := s.db.WithContext(ctx).Create(&tool).Error; err != nil {
		return nil, fmt.Errorf("about service: add tool: %w", err)
	}
	return &tool, nil
}

// DeleteTool removes a tool.
func (s *AboutService) DeleteTool(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Tool{})
	if result.Error != nil {
		return fmt.Errorf("about service: delete tool: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFound("Tool not found")
	}
	return nil
}

// ExperienceInput captures a work history entry.
type ExperienceInput struct {
	Role         string `json:"role" validate:"required"`
	Company      string `json:"company" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// AddExperience stores a new work history entry.
func (s *AboutService) AddExperience(ctx context.Context, input ExperienceInput) (*models.WorkExperience, error) {
	if strings.TrimSpace(input.Role) == "" || strings.TrimSpace(input.Company) == "" {
		return nil, appErrors.NewBadRequest("role and company are required")
	}

	experience := models.WorkExperience{
		Role:         strings.TrimSpace(input.Role),
		Company:      strings.TrimSpace(input.Company),
		Duration:     input.Duration,
		Description:  input.Description,
		DisplayOrder: input.DisplayOrder,
	}
	if err := s.db.WithContext(ctx).Create(&experience).Error; err != nil {
		return nil, fmt.Errorf("about service: add experience: %w", err)
	}
	return &experience, nil
}

// UpdateExperienceInput captures the optional fields of an experience update.
type UpdateExperienceInput struct {
	Role         *string `json:"role"`
	Company      *string `json:"company"`
	Duration     *string `json:"duration"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"`
}

// UpdateExperience applies the provided fields to a work history entry.
func (s *AboutService) UpdateExperience(ctx context.Context, id string, input UpdateExperienceInput) (*models.WorkExperience, error) {
	var experience models.WorkExperience
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&experience).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Experience not found")
		}
		return nil, fmt.Errorf("about service: find experience: %w", err)
	}

	if input.Role != nil {
		experience.Role = strings.TrimSpace(*input.Role)
	}
	if input.Company != nil {
		experience.Company = strings.TrimSpace(*input.Company)
	}
	if input.Duration != nil {
		experience.Duration = *input.Duration
	}
	if input.Description != nil {
		experience.Description = *input.Description
	}
	if input.DisplayOrder != nil {
		experience.DisplayOrder = *input.DisplayOrder
	}

	if err := s.db.WithContext(ctx).Save(&experience).Error; err != nil {
		return nil, fmt.Errorf("about service: update experience: %w", err)
	}
	return &experience, nil
}

// DeleteExperience removes a work history entry.
func (s *AboutService) DeleteExperience(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.WorkExperience{})
	if result.Error != nil {
		return fmt.Errorf("about service: delete experience: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFound("Experience not found")
	}
	return nil
}
