package repository

import (
	"learnpath_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository interface {
	FindByUserID(userID uint) (*model.UserProgress, error)
	Save(progress *model.UserProgress) error
}

type GormProgressRepository struct {
	DB *gorm.DB
}

func NewGormProgressRepository(db *gorm.DB) *GormProgressRepository {
	return &GormProgressRepository{DB: db}
}

func (r *GormProgressRepository) FindByUserID(userID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ?", userID).First(&progress).Error
	return &progress, err
}

func (r *GormProgressRepository) Save(progress *model.UserProgress) error {
	return r.DB.Save(progress).Error
}
