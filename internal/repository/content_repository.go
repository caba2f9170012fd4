package repository

import (
	"strings"

	"learnpath_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository interface {
	List() ([]model.ContentItem, error)
	ListByType(contentType string) ([]model.ContentItem, error)
}

type GormContentRepository struct {
	DB *gorm.DB
}

func NewGormContentRepository(db *gorm.DB) *GormContentRepository {
	return &GormContentRepository{DB: db}
}

func (r *GormContentRepository) List() ([]model.ContentItem, error) {
	var items []model.ContentItem
	err := r.DB.Order("id ASC").Find(&items).Error
	return items, err
}

// ListByType filters case-insensitively, same as the memory store.
func (r *GormContentRepository) ListByType(contentType string) ([]model.ContentItem, error) {
	var items []model.ContentItem
	err := r.DB.Where("lower(type) = ?", strings.ToLower(contentType)).Order("id ASC").Find(&items).Error
	return items, err
}
