package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"spareparts-backend/internal/model"
	"spareparts-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInventoryService struct {
	priceSet *float64
}

func (s *stubInventoryService) CreateItem(req *service.CreateItemRequest) (*model.Item, error) {
	return &model.Item{Name: req.Name}, nil
}

func (s *stubInventoryService) GetAllItems() ([]model.Item, error) { return nil, nil }

func (s *stubInventoryService) GetItem(id uuid.UUID) (*model.Item, error) {
	return &model.Item{}, nil
}

func (s *stubInventoryService) AdjustQuantity(id uuid.UUID, delta int, kind model.QuantityEventKind) (*model.Item, error) {
	return &model.Item{}, nil
}

func (s *stubInventoryService) SetPrice(id uuid.UUID, price float64) (*model.Item, error) {
	s.priceSet = &price
	return &model.Item{Price: price}, nil
}

func (s *stubInventoryService) DeleteItem(id uuid.UUID) error { return nil }

func (s *stubInventoryService) ListSizes() ([]model.Size, error) { return nil, nil }

func (s *stubInventoryService) AddSize(value string) (*model.Size, error) {
	return &model.Size{Value: value}, nil
}

func (s *stubInventoryService) DeleteSize(id uuid.UUID) error { return nil }

func newInventoryApp(stub *stubInventoryService) *fiber.App {
	app := fiber.New()
	h := NewInventoryHandler(stub)
	app.Patch("/api/inventory/:id/price", h.SetPrice)
	return app
}

func patchJSON(t *testing.T, app *fiber.App, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("PATCH", target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestSetPriceEndpoint(t *testing.T) {
	stub := &stubInventoryService{}
	app := newInventoryApp(stub)
	target := "/api/inventory/" + uuid.NewString() + "/price"

	status, body := patchJSON(t, app, target, fiber.Map{"price": 12.5})
	assert.Equal(t, 200, status)
	assert.Equal(t, 12.5, body["price"])
	require.NotNil(t, stub.priceSet)
	assert.Equal(t, 12.5, *stub.priceSet)
}

func TestSetPriceMissingPrice(t *testing.T) {
	stub := &stubInventoryService{}
	app := newInventoryApp(stub)
	target := "/api/inventory/" + uuid.NewString() + "/price"

	// A body without a price must be rejected, not treated as zero.
	status, body := patchJSON(t, app, target, fiber.Map{})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Price is required", body["message"])
	assert.Nil(t, stub.priceSet)
}

func TestSetPriceExplicitZero(t *testing.T) {
	stub := &stubInventoryService{}
	app := newInventoryApp(stub)
	target := "/api/inventory/" + uuid.NewString() + "/price"

	status, _ := patchJSON(t, app, target, fiber.Map{"price": 0})
	assert.Equal(t, 200, status)
	require.NotNil(t, stub.priceSet)
	assert.Equal(t, 0.0, *stub.priceSet)
}
