package handler

import (
	"errors"
	"fmt"
	"log"

	"spareparts-backend/internal/service"
	"spareparts-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto the HTTP status taxonomy. Anything
// unrecognized is an internal failure: details are logged server-side and
// the caller only sees a generic message.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrSizeNotFound),
		errors.Is(err, service.ErrSupplierNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return c.Status(404).JSON(fiber.Map{"message": err.Error()})

	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(401).JSON(fiber.Map{"message": err.Error()})

	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrAdminExists),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrItemExists),
		errors.Is(err, service.ErrItemNameExists),
		errors.Is(err, service.ErrInvalidQuantityOp),
		errors.Is(err, service.ErrQuantityBelowZero),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidCurrency),
		errors.Is(err, service.ErrSizeValueRequired),
		errors.Is(err, service.ErrSizeExists),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidTransactionType):
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	log.Println("internal error:", err)
	return c.Status(500).JSON(fiber.Map{"message": "Internal server error"})
}

// validateBody runs struct validation on a parsed request body and writes a
// 400 for the first failing field. Returns true when the request was rejected.
func validateBody(c *fiber.Ctx, body interface{}) (rejected bool, err error) {
	if errs := validator.ValidateStruct(body); len(errs) > 0 {
		first := errs[0]
		msg := fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag)
		return true, c.Status(400).JSON(fiber.Map{"message": msg})
	}
	return false, nil
}
