package repository

import (
	"learnpath_backend/internal/model"

	"gorm.io/gorm"
)

type QuizAttemptRepository interface {
	FindByUserCourseTopic(userID uint, courseName, topicID string) (*model.QuizAttempt, error)
	Save(attempt *model.QuizAttempt) error
	ListByUser(userID uint) ([]model.QuizAttempt, error)
}

type GormQuizAttemptRepository struct {
	DB *gorm.DB
}

func NewGormQuizAttemptRepository(db *gorm.DB) *GormQuizAttemptRepository {
	return &GormQuizAttemptRepository{DB: db}
}

func (r *GormQuizAttemptRepository) FindByUserCourseTopic(userID uint, courseName, topicID string) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.Where("user_id = ? AND course_name = ? AND topic_id = ?", userID, courseName, topicID).
		First(&attempt).Error
	return &attempt, err
}

func (r *GormQuizAttemptRepository) Save(attempt *model.QuizAttempt) error {
	return r.DB.Save(attempt).Error
}

func (r *GormQuizAttemptRepository) ListByUser(userID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("user_id = ?", userID).Order("updated_at DESC").Find(&attempts).Error
	return attempts, err
}
