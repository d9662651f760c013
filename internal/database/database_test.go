package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bolajio/portfolio-api/internal/models"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "oracle"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported database driver")
}

func TestAutoMigrateAndSeedIsIdempotent(t *testing.T) {
	db, err := Open(Config{Driver: "sqlite", DSN: "file:dbtest?mode=memory&cache=shared"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrateAndSeed(db))
	require.NoError(t, AutoMigrateAndSeed(db))

	var count int64
	require.NoError(t, db.Model(&models.AboutProfile{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	var profile models.AboutProfile
	require.NoError(t, db.First(&profile).Error)
	require.Equal(t, defaultBio, profile.Bio)
}

func TestAutoMigrateAndSeedNilHandle(t *testing.T) {
	require.Error(t, AutoMigrateAndSeed(nil))
}
