package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bolajio/portfolio-api/internal/database/testutil"
)

func newProjectFixture(t *testing.T) *ProjectService {
	t.Helper()
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewProjectService(db)
	require.NoError(t, err)
	return svc
}

func TestProjectCreateAndListSplitsLists(t *testing.T) {
	svc := newProjectFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProjectInput{
		Title:       "Portfolio Site",
		Description: "This very site",
		TechStack:   []string{"Go", "Gin", "SQLite"},
		Tools:       []string{"Docker"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Go", "Gin", "SQLite"}, created.TechStack)
	require.Equal(t, []string{"Docker"}, created.Tools)

	_, err = svc.Create(ctx, CreateProjectInput{Title: "  ", Description: "x"})
	requireAppCode(t, err, "BAD_REQUEST")

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, []string{"Go", "Gin", "SQLite"}, projects[0].TechStack)
}

func TestProjectListOrdersByDisplayOrder(t *testing.T) {
	svc := newProjectFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateProjectInput{Title: "Second", Description: "d", DisplayOrder: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateProjectInput{Title: "First", Description: "d", DisplayOrder: 1})
	require.NoError(t, err)

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "First", projects[0].Title)
	require.Equal(t, "Second", projects[1].Title)
}

func TestProjectUpdatePartialAndDelete(t *testing.T) {
	svc := newProjectFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProjectInput{
		Title:       "Original",
		Description: "desc",
		TechStack:   []string{"Go"},
	})
	require.NoError(t, err)

	newTitle := "Renamed"
	updated, err := svc.Update(ctx, created.ID, UpdateProjectInput{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)
	// Untouched fields survive a partial update.
	require.Equal(t, "desc", updated.Description)
	require.Equal(t, []string{"Go"}, updated.TechStack)

	_, err = svc.Update(ctx, "missing-id", UpdateProjectInput{Title: &newTitle})
	requireAppCode(t, err, "NOT_FOUND")

	require.NoError(t, svc.Delete(ctx, created.ID))
	err = svc.Delete(ctx, created.ID)
	requireAppCode(t, err, "NOT_FOUND")
}
