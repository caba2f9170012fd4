package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnpath_backend/internal/config"
	"learnpath_backend/pkg/database"
)

func TestGormListByTypeIgnoresCase(t *testing.T) {
	db, err := database.InitDB(&config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "app.db"),
	})
	require.NoError(t, err)

	repo := NewGormContentRepository(db)

	lower, err := repo.ListByType("video")
	require.NoError(t, err)
	upper, err := repo.ListByType("VIDEO")
	require.NoError(t, err)

	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)
}
