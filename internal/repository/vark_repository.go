package repository

import (
	"learnpath_backend/internal/model"

	"gorm.io/gorm"
)

type VarkRepository interface {
	FindByEmail(userEmail string) (*model.VarkResponse, error)
	Save(response *model.VarkResponse) error
}

type GormVarkRepository struct {
	DB *gorm.DB
}

func NewGormVarkRepository(db *gorm.DB) *GormVarkRepository {
	return &GormVarkRepository{DB: db}
}

func (r *GormVarkRepository) FindByEmail(userEmail string) (*model.VarkResponse, error) {
	var response model.VarkResponse
	err := r.DB.Where("user_email = ?", userEmail).First(&response).Error
	return &response, err
}

func (r *GormVarkRepository) Save(response *model.VarkResponse) error {
	return r.DB.Save(response).Error
}
