package repository

import (
	"spareparts-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	Create(item *model.Item) error
	FindAll() ([]model.Item, error)
	FindByID(id uuid.UUID) (*model.Item, error)
	FindByName(name string) (*model.Item, error)
	FindByNameAndSize(name, size string) (*model.Item, error)
	ApplyQuantityChange(id uuid.UUID, event *model.QuantityEvent, compute func(current int) (int, error)) error
	UpdatePrice(id uuid.UUID, price float64) error
	Delete(id uuid.UUID) error
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db}
}

func historyOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

func (r *itemRepo) Create(item *model.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepo) FindAll() ([]model.Item, error) {
	var items []model.Item
	err := r.db.Preload("History", historyOrdered).Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByID(id uuid.UUID) (*model.Item, error) {
	var item model.Item
	if err := r.db.Preload("History", historyOrdered).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) FindByName(name string) (*model.Item, error) {
	var item model.Item
	if err := r.db.First(&item, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) FindByNameAndSize(name, size string) (*model.Item, error) {
	var item model.Item
	if err := r.db.First(&item, "name = ? AND size = ?", name, size).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ApplyQuantityChange reads the row under a FOR UPDATE lock, derives the new
// running total from the committed value and appends the event, all inside a
// single database transaction.
func (r *itemRepo) ApplyQuantityChange(id uuid.UUID, event *model.QuantityEvent, compute func(current int) (int, error)) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var item model.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", id).Error; err != nil {
			return err
		}

		newQuantity, err := compute(item.CurrentQuantity)
		if err != nil {
			return err
		}

		if err := tx.Model(&model.Item{}).
			Where("id = ?", id).
			Update("current_quantity", newQuantity).Error; err != nil {
			return err
		}
		event.ItemID = id
		return tx.Create(event).Error
	})
}

func (r *itemRepo) UpdatePrice(id uuid.UUID, price float64) error {
	return r.db.Model(&model.Item{}).Where("id = ?", id).Update("price", price).Error
}

// Delete removes the item and, via the FK cascade, its full history.
func (r *itemRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Item{}, "id = ?", id).Error
}
