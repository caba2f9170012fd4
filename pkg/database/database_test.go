package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learnpath_backend/internal/config"
	"learnpath_backend/internal/model"
)

func TestInitDBSeedsContentOnce(t *testing.T) {
	cfg := &config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "app.db")}

	db, err := InitDB(cfg)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.ContentItem{}).Count(&count).Error)
	assert.Equal(t, int64(len(DefaultContent())), count)

	// Reopening must not duplicate the catalogue.
	db, err = InitDB(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.ContentItem{}).Count(&count).Error)
	assert.Equal(t, int64(len(DefaultContent())), count)
}

func TestInitDBTranslatesDuplicateKey(t *testing.T) {
	cfg := &config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "app.db")}

	db, err := InitDB(cfg)
	require.NoError(t, err)

	require.NoError(t, db.Create(&model.User{Name: "Ada", Email: "ada@example.com", Password: "x"}).Error)

	// The unique email constraint surfaces as the gorm sentinel, same as
	// the memory store.
	err = db.Create(&model.User{Name: "Eve", Email: "ada@example.com", Password: "x"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
