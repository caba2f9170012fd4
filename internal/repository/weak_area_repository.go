package repository

import (
	"learnpath_backend/internal/model"

	"gorm.io/gorm"
)

type WeakAreaRepository interface {
	FindByQuestion(userEmail, courseName, topicID, questionText string) (*model.WeakArea, error)
	Save(area *model.WeakArea) error
	ListByEmail(userEmail string) ([]model.WeakArea, error)
	FindByID(id uint) (*model.WeakArea, error)
}

type GormWeakAreaRepository struct {
	DB *gorm.DB
}

func NewGormWeakAreaRepository(db *gorm.DB) *GormWeakAreaRepository {
	return &GormWeakAreaRepository{DB: db}
}

func (r *GormWeakAreaRepository) FindByQuestion(userEmail, courseName, topicID, questionText string) (*model.WeakArea, error) {
	var area model.WeakArea
	err := r.DB.Where("user_email = ? AND course_name = ? AND topic_id = ? AND question_text = ?",
		userEmail, courseName, topicID, questionText).First(&area).Error
	return &area, err
}

func (r *GormWeakAreaRepository) Save(area *model.WeakArea) error {
	return r.DB.Save(area).Error
}

func (r *GormWeakAreaRepository) ListByEmail(userEmail string) ([]model.WeakArea, error) {
	var areas []model.WeakArea
	err := r.DB.Where("user_email = ?", userEmail).Order("wrong_count DESC").Find(&areas).Error
	return areas, err
}

func (r *GormWeakAreaRepository) FindByID(id uint) (*model.WeakArea, error) {
	var area model.WeakArea
	err := r.DB.First(&area, id).Error
	return &area, err
}
