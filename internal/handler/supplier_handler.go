package handler

import (
	"spareparts-backend/internal/model"
	"spareparts-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

// CreateSupplier creates a supplier account (credential + profile)
// POST /api/suppliers
func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	var req service.CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}
	if rejected, err := validateBody(c, &req); rejected {
		return err
	}

	supplier, err := h.service.CreateSupplier(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(supplier.ToSummary())
}

// ListSuppliers lists all suppliers, most recent first
// GET /api/suppliers
func (h *SupplierHandler) ListSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.ListSuppliers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(suppliers)
}

// GetSupplier returns one supplier with full transaction history
// GET /api/suppliers/:id
func (h *SupplierHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := parseUUID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Supplier not found"})
	}

	supplier, err := h.service.GetSupplier(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(supplier.ToDetail())
}

// GetTransactions returns just the ledger of one supplier
// GET /api/suppliers/:id/transactions
func (h *SupplierHandler) GetTransactions(c *fiber.Ctx) error {
	id, err := parseUUID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Supplier not found"})
	}

	transactions, err := h.service.GetTransactions(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transactions)
}

// AddTransactionRequest represents the ledger entry request body
type AddTransactionRequest struct {
	Amount float64               `json:"amount"`
	Type   model.TransactionType `json:"type" validate:"required"`
	Note   string                `json:"note"`
}

// AddTransaction appends a balance transaction
// POST /api/suppliers/:id/transactions
func (h *SupplierHandler) AddTransaction(c *fiber.Ctx) error {
	id, err := parseUUID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Supplier not found"})
	}

	var req AddTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}
	if rejected, err := validateBody(c, &req); rejected {
		return err
	}

	supplier, err := h.service.AddTransaction(id, req.Amount, req.Type, req.Note)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":           supplier.ID,
		"balance":      supplier.Balance,
		"transactions": supplier.Transactions,
	})
}

// ResetPasswordRequest represents the supplier password reset body
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required"`
}

// ResetPassword resets the linked user's credential
// POST /api/suppliers/:id/reset-password
func (h *SupplierHandler) ResetPassword(c *fiber.Ctx) error {
	id, err := parseUUID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Supplier not found"})
	}

	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}
	if rejected, err := validateBody(c, &req); rejected {
		return err
	}

	if err := h.service.ResetPassword(id, req.NewPassword); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Supplier password reset successfully"})
}

// DeleteSupplier removes a supplier and its linked user account
// DELETE /api/suppliers/:id
func (h *SupplierHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := parseUUID(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Supplier not found"})
	}

	if err := h.service.DeleteSupplier(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Supplier deleted successfully"})
}
