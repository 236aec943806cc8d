package repository

import (
	"spareparts-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SizeRepository interface {
	Create(size *model.Size) error
	FindAll() ([]model.Size, error)
	FindByID(id uuid.UUID) (*model.Size, error)
	FindByValue(value string) (*model.Size, error)
	Delete(id uuid.UUID) error
}

type sizeRepo struct {
	db *gorm.DB
}

func NewSizeRepo(db *gorm.DB) SizeRepository {
	return &sizeRepo{db}
}

func (r *sizeRepo) Create(size *model.Size) error {
	return r.db.Create(size).Error
}

func (r *sizeRepo) FindAll() ([]model.Size, error) {
	var sizes []model.Size
	err := r.db.Order("value ASC").Find(&sizes).Error
	return sizes, err
}

func (r *sizeRepo) FindByID(id uuid.UUID) (*model.Size, error) {
	var size model.Size
	if err := r.db.First(&size, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepo) FindByValue(value string) (*model.Size, error) {
	var size model.Size
	if err := r.db.First(&size, "value = ?", value).Error; err != nil {
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Size{}, "id = ?", id).Error
}
