package repository

import (
	"spareparts-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SupplierRepository interface {
	CreateWithUser(user *model.User, supplier *model.Supplier) error
	FindAll() ([]model.Supplier, error)
	FindByID(id uuid.UUID) (*model.Supplier, error)
	ApplyTransaction(id uuid.UUID, entry *model.LedgerTransaction, compute func(balance float64) float64) error
	DeleteWithUser(supplier *model.Supplier) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func transactionsOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// CreateWithUser creates the credential and the profile as a single logical
// unit. A failed profile creation rolls back the user row, so no orphaned
// credential is ever left behind.
func (r *supplierRepo) CreateWithUser(user *model.User, supplier *model.Supplier) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		supplier.UserID = user.ID
		return tx.Create(supplier).Error
	})
}

func (r *supplierRepo) FindAll() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Preload("User").Order("created_at DESC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.Preload("User").
		Preload("Transactions", transactionsOrdered).
		First(&supplier, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// ApplyTransaction reads the balance under a FOR UPDATE lock, derives the
// new balance from the committed value and appends the ledger entry with its
// snapshot, all inside a single database transaction.
func (r *supplierRepo) ApplyTransaction(id uuid.UUID, entry *model.LedgerTransaction, compute func(balance float64) float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var supplier model.Supplier
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&supplier, "id = ?", id).Error; err != nil {
			return err
		}

		newBalance := compute(supplier.Balance)

		if err := tx.Model(&model.Supplier{}).
			Where("id = ?", id).
			Update("balance", newBalance).Error; err != nil {
			return err
		}
		entry.SupplierID = id
		entry.BalanceAfter = newBalance
		return tx.Create(entry).Error
	})
}

// DeleteWithUser removes the profile and its linked user together. The
// profile goes first so the user FK reference is gone before the user row.
func (r *supplierRepo) DeleteWithUser(supplier *model.Supplier) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Supplier{}, "id = ?", supplier.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, "id = ?", supplier.UserID).Error
	})
}
