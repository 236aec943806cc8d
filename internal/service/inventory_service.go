package service

import (
	"errors"
	"strings"

	"spareparts-backend/internal/model"
	"spareparts-backend/internal/repository"
	"spareparts-backend/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrItemExists        = errors.New("a spare part with this name and size already exists")
	ErrItemNameExists    = errors.New("a spare part with this name already exists")
	ErrItemNotFound      = errors.New("spare part not found")
	ErrInvalidQuantityOp = errors.New(`operation type must be either "addition" or "subtraction"`)
	ErrQuantityBelowZero = errors.New("cannot reduce quantity below 0")
	ErrInvalidPrice      = errors.New("price must be a non-negative number")
	ErrInvalidCurrency   = errors.New(`currency must be either "USD" or "LRD"`)
	ErrSizeValueRequired = errors.New("size value is required")
	ErrSizeExists        = errors.New("this size already exists")
	ErrSizeNotFound      = errors.New("size not found")
)

type CreateItemRequest struct {
	Name     string         `json:"name" validate:"required"`
	Size     string         `json:"size"`
	Price    float64        `json:"price"`
	Currency model.Currency `json:"currency"`
	Quantity int            `json:"quantity"`
}

type InventoryService interface {
	CreateItem(req *CreateItemRequest) (*model.Item, error)
	GetAllItems() ([]model.Item, error)
	GetItem(id uuid.UUID) (*model.Item, error)
	AdjustQuantity(id uuid.UUID, delta int, kind model.QuantityEventKind) (*model.Item, error)
	SetPrice(id uuid.UUID, price float64) (*model.Item, error)
	DeleteItem(id uuid.UUID) error

	ListSizes() ([]model.Size, error)
	AddSize(value string) (*model.Size, error)
	DeleteSize(id uuid.UUID) error
}

type inventoryService struct {
	itemRepo repository.ItemRepository
	sizeRepo repository.SizeRepository
	wsHub    *ws.Hub
}

func NewInventoryService(itemRepo repository.ItemRepository, sizeRepo repository.SizeRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		itemRepo: itemRepo,
		sizeRepo: sizeRepo,
		wsHub:    hub,
	}
}

func (s *inventoryService) CreateItem(req *CreateItemRequest) (*model.Item, error) {
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	currency := req.Currency
	if currency == "" {
		currency = model.CurrencyUSD
	}
	if !currency.Valid() {
		return nil, ErrInvalidCurrency
	}

	// Duplicate check: with a size supplied, the identity is the (name, size)
	// pair; without one, any item with the same name is a conflict.
	if req.Size != "" {
		existing, err := s.itemRepo.FindByNameAndSize(req.Name, req.Size)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrItemExists
		}
	} else {
		existing, err := s.itemRepo.FindByName(req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrItemNameExists
		}
	}

	item := &model.Item{
		Name:            req.Name,
		Size:            req.Size,
		Price:           req.Price,
		Currency:        currency,
		CurrentQuantity: req.Quantity,
		History: []model.QuantityEvent{
			{Quantity: req.Quantity, Kind: model.QuantityInitial},
		},
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}

	go s.wsHub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "item_created",
		"item": map[string]interface{}{
			"id":              item.ID,
			"name":            item.Name,
			"size":            item.Size,
			"currentQuantity": item.CurrentQuantity,
		},
	})

	return item, nil
}

func (s *inventoryService) GetAllItems() ([]model.Item, error) {
	return s.itemRepo.FindAll()
}

func (s *inventoryService) GetItem(id uuid.UUID) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// AdjustQuantity applies a caller-signed delta to the running total and
// appends the matching event. The new total is derived from the row read
// under lock inside the repository transaction, so the total may never drop
// below zero and always equals the sum of all event deltas.
func (s *inventoryService) AdjustQuantity(id uuid.UUID, delta int, kind model.QuantityEventKind) (*model.Item, error) {
	if kind != model.QuantityAddition && kind != model.QuantitySubtraction {
		return nil, ErrInvalidQuantityOp
	}

	event := &model.QuantityEvent{Quantity: delta, Kind: kind}
	err := s.itemRepo.ApplyQuantityChange(id, event, func(current int) (int, error) {
		if current+delta < 0 {
			return 0, ErrQuantityBelowZero
		}
		return current + delta, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}

	go s.wsHub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "quantity_adjusted",
		"item": map[string]interface{}{
			"id":              item.ID,
			"name":            item.Name,
			"delta":           delta,
			"currentQuantity": item.CurrentQuantity,
		},
	})

	return item, nil
}

func (s *inventoryService) SetPrice(id uuid.UUID, price float64) (*model.Item, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.UpdatePrice(item.ID, price); err != nil {
		return nil, err
	}
	item.Price = price
	return item, nil
}

func (s *inventoryService) DeleteItem(id uuid.UUID) error {
	item, err := s.GetItem(id)
	if err != nil {
		return err
	}

	if err := s.itemRepo.Delete(item.ID); err != nil {
		return err
	}

	go s.wsHub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "item_deleted",
		"item":   map[string]interface{}{"id": item.ID, "name": item.Name},
	})

	return nil
}

func (s *inventoryService) ListSizes() ([]model.Size, error) {
	return s.sizeRepo.FindAll()
}

func (s *inventoryService) AddSize(value string) (*model.Size, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ErrSizeValueRequired
	}

	existing, err := s.sizeRepo.FindByValue(value)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSizeExists
	}

	size := &model.Size{Value: value}
	if err := s.sizeRepo.Create(size); err != nil {
		return nil, err
	}
	return size, nil
}

// DeleteSize removes only the size tag. Items carrying the value keep it;
// the size field on an item is a plain string copy, not a foreign key.
func (s *inventoryService) DeleteSize(id uuid.UUID) error {
	if _, err := s.sizeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSizeNotFound
		}
		return err
	}
	return s.sizeRepo.Delete(id)
}
