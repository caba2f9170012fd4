package repository

import (
	"learnpath_backend/internal/model"

	"gorm.io/gorm"
)

// UserRepository is implemented by the gorm store and the in-memory store;
// the app picks one at startup from database.driver.
type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	Leaderboard(limit int) ([]model.User, error)
}

type GormUserRepository struct {
	DB *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{DB: db}
}

func (r *GormUserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *GormUserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *GormUserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *GormUserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *GormUserRepository) Leaderboard(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("xp DESC, name ASC").Limit(limit).Find(&users).Error
	return users, err
}
