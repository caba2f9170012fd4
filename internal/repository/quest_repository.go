package repository

import (
	"learnpath_backend/internal/model"

	"gorm.io/gorm"
)

type QuestRepository interface {
	ListByUser(userID uint) ([]model.Quest, error)
	FindByID(id uint) (*model.Quest, error)
	FindByUserSlug(userID uint, slug string) (*model.Quest, error)
	Save(quest *model.Quest) error
}

type GormQuestRepository struct {
	DB *gorm.DB
}

func NewGormQuestRepository(db *gorm.DB) *GormQuestRepository {
	return &GormQuestRepository{DB: db}
}

func (r *GormQuestRepository) ListByUser(userID uint) ([]model.Quest, error) {
	var quests []model.Quest
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&quests).Error
	return quests, err
}

func (r *GormQuestRepository) FindByID(id uint) (*model.Quest, error) {
	var quest model.Quest
	err := r.DB.First(&quest, id).Error
	return &quest, err
}

func (r *GormQuestRepository) FindByUserSlug(userID uint, slug string) (*model.Quest, error) {
	var quest model.Quest
	err := r.DB.Where("user_id = ? AND slug = ?", userID, slug).First(&quest).Error
	return &quest, err
}

func (r *GormQuestRepository) Save(quest *model.Quest) error {
	return r.DB.Save(quest).Error
}
