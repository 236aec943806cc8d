package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyLRD Currency = "LRD"
)

// Valid reports whether the currency is one of the supported codes.
func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyLRD
}

type QuantityEventKind string

const (
	QuantityAddition    QuantityEventKind = "addition"
	QuantitySubtraction QuantityEventKind = "subtraction"
	QuantitySale        QuantityEventKind = "sale"
	QuantityInitial     QuantityEventKind = "initial"
	QuantityUpdate      QuantityEventKind = "update"
)

// Item is a stock item (spare part). Identity is the (name, size) pair; the
// size may be empty. CurrentQuantity must always equal the sum of all event
// deltas in History, starting from the seeded "initial" event.
type Item struct {
	BaseModel
	Name            string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_items_name_size" json:"name" validate:"required"`
	Size            string          `gorm:"type:varchar(50);uniqueIndex:idx_items_name_size" json:"size,omitempty"`
	Price           float64         `gorm:"not null" json:"price" validate:"gte=0"`
	Currency        Currency        `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	CurrentQuantity int             `gorm:"not null;default:0" json:"currentQuantity"`
	History         []QuantityEvent `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"quantityHistory"`
}

// QuantityEvent is one append-only entry in an item's quantity audit trail.
// Quantity is the signed delta applied to the running total.
type QuantityEvent struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;" json:"id"`
	ItemID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"-"`
	Quantity  int               `gorm:"not null" json:"quantity"`
	Kind      QuantityEventKind `gorm:"type:varchar(20);not null" json:"type"`
	CreatedAt time.Time         `json:"date"`
}

func (e *QuantityEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
