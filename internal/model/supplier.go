package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TxAddition    TransactionType = "addition"
	TxSubtraction TransactionType = "subtraction"
	TxInitial     TransactionType = "initial"
)

// Contact holds the optional contact details of a supplier.
type Contact struct {
	Phone   string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Email   string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address string `gorm:"type:varchar(255)" json:"address,omitempty"`
}

// Supplier is a business profile linked 1:1 to a User account. Balance must
// always equal the signed sum of all ledger transactions; a negative balance
// represents an amount owed.
type Supplier struct {
	BaseModel
	UserID       uuid.UUID           `gorm:"type:uuid;uniqueIndex;not null" json:"-"`
	User         *User               `gorm:"foreignKey:UserID" json:"-"`
	Name         string              `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Contact      Contact             `gorm:"embedded;embeddedPrefix:contact_" json:"contact"`
	Balance      float64             `gorm:"not null;default:0" json:"balance"`
	Transactions []LedgerTransaction `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"transactions,omitempty"`
}

// LedgerTransaction is one append-only entry in a supplier's balance ledger.
// Amount is a positive magnitude; the sign is carried by Type. BalanceAfter
// snapshots the balance immediately after this entry was applied.
type LedgerTransaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	SupplierID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Amount       float64         `gorm:"not null" json:"amount"`
	Type         TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Note         string          `gorm:"type:varchar(255)" json:"note"`
	BalanceAfter float64         `gorm:"not null" json:"balanceAfter"`
	CreatedAt    time.Time       `json:"date"`
}

func (t *LedgerTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// SupplierSummary is the list representation, joined to the linked user.
type SupplierSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	Contact   Contact   `json:"contact"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

// SupplierDetail adds the full transaction history.
type SupplierDetail struct {
	SupplierSummary
	Transactions []LedgerTransaction `json:"transactions"`
}

// ToSummary converts Supplier to SupplierSummary
func (s *Supplier) ToSummary() SupplierSummary {
	summary := SupplierSummary{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		Balance:   s.Balance,
		CreatedAt: s.CreatedAt,
	}
	if s.User != nil {
		summary.Username = s.User.Username
		summary.Role = s.User.Role
	}
	return summary
}

// ToDetail converts Supplier to SupplierDetail
func (s *Supplier) ToDetail() SupplierDetail {
	transactions := s.Transactions
	if transactions == nil {
		transactions = []LedgerTransaction{}
	}
	return SupplierDetail{
		SupplierSummary: s.ToSummary(),
		Transactions:    transactions,
	}
}
