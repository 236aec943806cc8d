package service

import (
	"sort"
	"time"

	"spareparts-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the gorm implementations closely
// enough for the invariants under test: not-found is gorm.ErrRecordNotFound,
// IDs and timestamps are assigned on create, and the read-modify-write
// methods derive the new total from the stored row. findErr, when set,
// simulates a lookup failing for a reason other than not-found.

type fakeUserRepo struct {
	users   map[uuid.UUID]*model.User
	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) CountByRole(role model.Role) (int64, error) {
	var count int64
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) UpdateCredential(id uuid.UUID, digest, salt string) error {
	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = digest
	u.Salt = salt
	return nil
}

func (f *fakeUserRepo) ListUsernames() ([]string, error) {
	var usernames []string
	for _, u := range f.users {
		usernames = append(usernames, u.Username)
	}
	sort.Strings(usernames)
	return usernames, nil
}

type fakeItemRepo struct {
	items   map[uuid.UUID]*model.Item
	findErr error
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*model.Item)}
}

func (f *fakeItemRepo) Create(item *model.Item) error {
	item.ID = uuid.New()
	item.CreatedAt = time.Now()
	for i := range item.History {
		item.History[i].ID = uuid.New()
		item.History[i].ItemID = item.ID
		item.History[i].CreatedAt = time.Now()
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) FindAll() ([]model.Item, error) {
	var items []model.Item
	for _, it := range f.items {
		items = append(items, *it)
	}
	return items, nil
}

func (f *fakeItemRepo) FindByID(id uuid.UUID) (*model.Item, error) {
	if it, ok := f.items[id]; ok {
		copied := *it
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeItemRepo) FindByName(name string) (*model.Item, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, it := range f.items {
		if it.Name == name {
			return it, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeItemRepo) FindByNameAndSize(name, size string) (*model.Item, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, it := range f.items {
		if it.Name == name && it.Size == size {
			return it, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeItemRepo) ApplyQuantityChange(id uuid.UUID, event *model.QuantityEvent, compute func(current int) (int, error)) error {
	it, ok := f.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	newQuantity, err := compute(it.CurrentQuantity)
	if err != nil {
		return err
	}
	it.CurrentQuantity = newQuantity
	event.ID = uuid.New()
	event.ItemID = id
	event.CreatedAt = time.Now()
	it.History = append(it.History, *event)
	return nil
}

func (f *fakeItemRepo) UpdatePrice(id uuid.UUID, price float64) error {
	it, ok := f.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	it.Price = price
	return nil
}

func (f *fakeItemRepo) Delete(id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

type fakeSizeRepo struct {
	sizes   map[uuid.UUID]*model.Size
	findErr error
}

func newFakeSizeRepo() *fakeSizeRepo {
	return &fakeSizeRepo{sizes: make(map[uuid.UUID]*model.Size)}
}

func (f *fakeSizeRepo) Create(size *model.Size) error {
	size.ID = uuid.New()
	size.CreatedAt = time.Now()
	f.sizes[size.ID] = size
	return nil
}

func (f *fakeSizeRepo) FindAll() ([]model.Size, error) {
	var sizes []model.Size
	for _, s := range f.sizes {
		sizes = append(sizes, *s)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i].Value < sizes[j].Value })
	return sizes, nil
}

func (f *fakeSizeRepo) FindByID(id uuid.UUID) (*model.Size, error) {
	if s, ok := f.sizes[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSizeRepo) FindByValue(value string) (*model.Size, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, s := range f.sizes {
		if s.Value == value {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSizeRepo) Delete(id uuid.UUID) error {
	delete(f.sizes, id)
	return nil
}

type fakeSupplierRepo struct {
	users     *fakeUserRepo
	suppliers map[uuid.UUID]*model.Supplier
}

func newFakeSupplierRepo(users *fakeUserRepo) *fakeSupplierRepo {
	return &fakeSupplierRepo{
		users:     users,
		suppliers: make(map[uuid.UUID]*model.Supplier),
	}
}

func (f *fakeSupplierRepo) CreateWithUser(user *model.User, supplier *model.Supplier) error {
	if err := f.users.Create(user); err != nil {
		return err
	}
	supplier.ID = uuid.New()
	supplier.CreatedAt = time.Now()
	supplier.UserID = user.ID
	for i := range supplier.Transactions {
		supplier.Transactions[i].ID = uuid.New()
		supplier.Transactions[i].SupplierID = supplier.ID
		supplier.Transactions[i].CreatedAt = time.Now()
	}
	f.suppliers[supplier.ID] = supplier
	return nil
}

func (f *fakeSupplierRepo) FindAll() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	for _, s := range f.suppliers {
		copied := *s
		if u, ok := f.users.users[s.UserID]; ok {
			copied.User = u
		}
		suppliers = append(suppliers, copied)
	}
	sort.Slice(suppliers, func(i, j int) bool {
		return suppliers[i].CreatedAt.After(suppliers[j].CreatedAt)
	})
	return suppliers, nil
}

func (f *fakeSupplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	s, ok := f.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	if u, ok := f.users.users[s.UserID]; ok {
		copied.User = u
	}
	return &copied, nil
}

func (f *fakeSupplierRepo) ApplyTransaction(id uuid.UUID, entry *model.LedgerTransaction, compute func(balance float64) float64) error {
	s, ok := f.suppliers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	newBalance := compute(s.Balance)
	s.Balance = newBalance
	entry.ID = uuid.New()
	entry.SupplierID = id
	entry.BalanceAfter = newBalance
	entry.CreatedAt = time.Now()
	s.Transactions = append(s.Transactions, *entry)
	return nil
}

func (f *fakeSupplierRepo) DeleteWithUser(supplier *model.Supplier) error {
	delete(f.suppliers, supplier.ID)
	delete(f.users.users, supplier.UserID)
	return nil
}
