package repository

import (
	"spareparts-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByUsername(username string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	CountByRole(role model.Role) (int64, error)
	UpdateCredential(id uuid.UUID, digest, salt string) error
	ListUsernames() ([]string, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) CountByRole(role model.Role) (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

// UpdateCredential replaces digest and salt together; a salt is never
// carried over across password changes.
func (r *userRepo) UpdateCredential(id uuid.UUID, digest, salt string) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password": digest,
			"salt":     salt,
		}).Error
}

func (r *userRepo) ListUsernames() ([]string, error) {
	var usernames []string
	err := r.db.Model(&model.User{}).
		Order("username ASC").
		Pluck("username", &usernames).Error
	return usernames, err
}
