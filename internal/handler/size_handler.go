package handler

import (
	"spareparts-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SizeHandler struct {
	service service.InventoryService
}

func NewSizeHandler(s service.InventoryService) *SizeHandler {
	return &SizeHandler{service: s}
}

// GetSizes lists all size tags sorted ascending by value
// GET /api/sizes
func (h *SizeHandler) GetSizes(c *fiber.Ctx) error {
	sizes, err := h.service.ListSizes()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sizes)
}

// AddSizeRequest represents the add size request body
type AddSizeRequest struct {
	Size string `json:"size" validate:"required"`
}

// AddSize registers a new allowed size value
// POST /api/sizes
func (h *SizeHandler) AddSize(c *fiber.Ctx) error {
	var req AddSizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}
	if rejected, err := validateBody(c, &req); rejected {
		return err
	}

	size, err := h.service.AddSize(req.Size)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(size)
}

// DeleteSize removes a size tag
// DELETE /api/sizes/:id
func (h *SizeHandler) DeleteSize(c *fiber.Ctx) error {
	id, err := parseUUID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Size not found"})
	}

	if err := h.service.DeleteSize(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Size deleted successfully"})
}
