package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bolajio/portfolio-api/internal/database/testutil"
	"github.com/bolajio/portfolio-api/internal/models"
)

func newAboutFixture(t *testing.T) *AboutService {
	t.Helper()
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewAboutService(db)
	require.NoError(t, err)
	return svc
}

func TestAboutGetCreatesDefaultProfile(t *testing.T) {
	svc := newAboutFixture(t)
	ctx := context.Background()

	data, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, DefaultBio, data.Bio)
	require.Empty(t, data.Skills)
	require.Empty(t, data.Tools)
	require.Empty(t, data.WorkExperiences)

	// The default row is created once, not per read.
	_, err = svc.Get(ctx)
	require.NoError(t, err)

	var count int64
	require.NoError(t, svc.db.Model(&models.AboutProfile{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestAboutUpdateProfilePartial(t *testing.T) {
	svc := newAboutFixture(t)
	ctx := context.Background()

	bio := "I build things."
	profile, err := svc.UpdateProfile(ctx, UpdateProfileInput{Bio: &bio})
	require.NoError(t, err)
	require.Equal(t, bio, profile.Bio)

	spotify := "https://open.spotify.com/user/bolaji"
	profile, err = svc.UpdateProfile(ctx, UpdateProfileInput{SpotifyURL: &spotify})
	require.NoError(t, err)
	require.Equal(t, spotify, profile.SpotifyURL)
	// Bio untouched by the second partial update.
	require.Equal(t, bio, profile.Bio)
}

func TestAboutSkillsAndTools(t *testing.T) {
	svc := newAboutFixture(t)
	ctx := context.Background()

	skill, err := svc.AddSkill(ctx, NamedIconInput{Name: "Go", IconName: "go-icon"})
	require.NoError(t, err)

	_, err = svc.AddSkill(ctx, NamedIconInput{Name: "", IconName: "x"})
	requireAppCode(t, err, "BAD_REQUEST")

	tool, err := svc.AddTool(ctx, NamedIconInput{Name: "Docker", IconName: "docker-icon"})
	require.NoError(t, err)

	data, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Len(t, data.Skills, 1)
	require.Len(t, data.Tools, 1)

	require.NoError(t, svc.DeleteSkill(ctx, skill.ID))
	require.NoError(t, svc.DeleteTool(ctx, tool.ID))

	err = svc.DeleteSkill(ctx, skill.ID)
	requireAppCode(t, err, "NOT_FOUND")
}

func TestAboutExperienceLifecycle(t *testing.T) {
	svc := newAboutFixture(t)
	ctx := context.Background()

	exp, err := svc.AddExperience(ctx, ExperienceInput{
		Role:     "Engineer",
		Company:  "Acme",
		Duration: "2020 - 2023",
	})
	require.NoError(t, err)

	role := "Senior Engineer"
	updated, err := svc.UpdateExperience(ctx, exp.ID, UpdateExperienceInput{Role: &role})
	require.NoError(t, err)
	require.Equal(t, "Senior Engineer", updated.Role)
	require.Equal(t, "Acme", updated.Company)

	_, err = svc.UpdateExperience(ctx, "missing", UpdateExperienceInput{Role: &role})
	requireAppCode(t, err, "NOT_FOUND")

	require.NoError(t, svc.DeleteExperience(ctx, exp.ID))
	err = svc.DeleteExperience(ctx, exp.ID)
	requireAppCode(t, err, "NOT_FOUND")
}
