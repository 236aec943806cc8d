package service

import (
	"errors"

	"spareparts-backend/internal/model"
	"spareparts-backend/internal/repository"
	"spareparts-backend/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSupplierNotFound       = errors.New("supplier not found")
	ErrInvalidAmount          = errors.New("amount must be a positive number")
	ErrInvalidTransactionType = errors.New(`type must be either "addition" or "subtraction"`)
)

type CreateSupplierRequest struct {
	Username       string        `json:"username" validate:"required"`
	Password       string        `json:"password" validate:"required"`
	Name           string        `json:"name" validate:"required"`
	Contact        model.Contact `json:"contact"`
	InitialBalance float64       `json:"initialBalance"`
}

type SupplierService interface {
	CreateSupplier(req *CreateSupplierRequest) (*model.Supplier, error)
	ListSuppliers() ([]model.SupplierSummary, error)
	GetSupplier(id uuid.UUID) (*model.Supplier, error)
	GetTransactions(id uuid.UUID) ([]model.LedgerTransaction, error)
	AddTransaction(id uuid.UUID, amount float64, txType model.TransactionType, note string) (*model.Supplier, error)
	ResetPassword(id uuid.UUID, newPassword string) error
	DeleteSupplier(id uuid.UUID) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
	userRepo     repository.UserRepository
	wsHub        *ws.Hub
}

func NewSupplierService(supplierRepo repository.SupplierRepository, userRepo repository.UserRepository, hub *ws.Hub) SupplierService {
	return &supplierService{
		supplierRepo: supplierRepo,
		userRepo:     userRepo,
		wsHub:        hub,
	}
}

// CreateSupplier provisions the credential and the profile as one unit. A
// non-zero starting balance is seeded into the ledger as an "initial" entry
// so the balance invariant holds from the first row.
func (s *supplierService) CreateSupplier(req *CreateSupplierRequest) (*model.Supplier, error) {
	existing, err := s.userRepo.FindByUsername(req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	digest, salt, err := newCredential(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Password: digest,
		Salt:     salt,
		Role:     model.RoleSupplier,
	}

	supplier := &model.Supplier{
		Name:    req.Name,
		Contact: req.Contact,
		Balance: req.InitialBalance,
	}
	if req.InitialBalance != 0 {
		supplier.Transactions = []model.LedgerTransaction{
			{
				Amount:       req.InitialBalance,
				Type:         model.TxInitial,
				Note:         "Initial balance",
				BalanceAfter: req.InitialBalance,
			},
		}
	}

	if err := s.supplierRepo.CreateWithUser(user, supplier); err != nil {
		return nil, err
	}
	supplier.User = user

	return supplier, nil
}

func (s *supplierService) ListSuppliers() ([]model.SupplierSummary, error) {
	suppliers, err := s.supplierRepo.FindAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]model.SupplierSummary, len(suppliers))
	for i := range suppliers {
		summaries[i] = suppliers[i].ToSummary()
	}
	return summaries, nil
}

func (s *supplierService) GetSupplier(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) GetTransactions(id uuid.UUID) ([]model.LedgerTransaction, error) {
	supplier, err := s.GetSupplier(id)
	if err != nil {
		return nil, err
	}
	if supplier.Transactions == nil {
		return []model.LedgerTransaction{}, nil
	}
	return supplier.Transactions, nil
}

// AddTransaction appends a ledger entry and moves the running balance. The
// amount carries no sign; the type decides the direction. The new balance is
// derived from the row read under lock inside the repository transaction,
// and the entry's snapshot is taken there too. The balance has no floor, a
// negative value represents an amount owed.
func (s *supplierService) AddTransaction(id uuid.UUID, amount float64, txType model.TransactionType, note string) (*model.Supplier, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if txType != model.TxAddition && txType != model.TxSubtraction {
		return nil, ErrInvalidTransactionType
	}

	entry := &model.LedgerTransaction{Amount: amount, Type: txType, Note: note}
	err := s.supplierRepo.ApplyTransaction(id, entry, func(balance float64) float64 {
		if txType == model.TxSubtraction {
			return balance - amount
		}
		return balance + amount
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	supplier, err := s.GetSupplier(id)
	if err != nil {
		return nil, err
	}

	go s.wsHub.Publish(map[string]interface{}{
		"type":   "ledger_update",
		"action": "transaction_added",
		"supplier": map[string]interface{}{
			"id":      supplier.ID,
			"name":    supplier.Name,
			"balance": supplier.Balance,
		},
	})

	return supplier, nil
}

func (s *supplierService) ResetPassword(id uuid.UUID, newPassword string) error {
	supplier, err := s.GetSupplier(id)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(supplier.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	digest, salt, err := newCredential(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdateCredential(user.ID, digest, salt)
}

// DeleteSupplier removes the profile and its linked credential together.
func (s *supplierService) DeleteSupplier(id uuid.UUID) error {
	supplier, err := s.GetSupplier(id)
	if err != nil {
		return err
	}
	return s.supplierRepo.DeleteWithUser(supplier)
}
