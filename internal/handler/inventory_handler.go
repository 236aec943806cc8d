package handler

import (
	"spareparts-backend/internal/model"
	"spareparts-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func parseUUID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// GetItems lists the full catalog with quantity history
// GET /api/inventory
func (h *InventoryHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GetItem returns a single item
// GET /api/inventory/:id
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseUUID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Spare part not found"})
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// CreateItem creates a new stock item
// POST /api/inventory
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var req service.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}
	if rejected, err := validateBody(c, &req); rejected {
		return err
	}

	item, err := h.service.CreateItem(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(item)
}

// AdjustQuantityRequest carries the signed delta and the event kind
type AdjustQuantityRequest struct {
	Quantity int                     `json:"quantity"`
	Type     model.QuantityEventKind `json:"type" validate:"required"`
}

// AdjustQuantity applies a quantity delta
// PATCH /api/inventory/:id/quantity
func (h *InventoryHandler) AdjustQuantity(c *fiber.Ctx) error {
	id, err := parseUUID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Spare part not found"})
	}

	var req AdjustQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}
	if rejected, err := validateBody(c, &req); rejected {
		return err
	}

	item, err := h.service.AdjustQuantity(id, req.Quantity, req.Type)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// SetPriceRequest represents the price update body. The pointer separates an
// absent price from an explicit zero.
type SetPriceRequest struct {
	Price *float64 `json:"price"`
}

// SetPrice updates the item price
// PATCH /api/inventory/:id/price
func (h *InventoryHandler) SetPrice(c *fiber.Ctx) error {
	id, err := parseUUID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Spare part not found"})
	}

	var req SetPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}
	if req.Price == nil {
		return c.Status(400).JSON(fiber.Map{"message": "Price is required"})
	}

	item, err := h.service.SetPrice(id, *req.Price)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// DeleteItem removes an item and its history
// DELETE /api/inventory/:id
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseUUID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Spare part not found"})
	}

	if err := h.service.DeleteItem(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Spare part deleted"})
}
