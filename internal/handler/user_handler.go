package handler

import (
	"spareparts-backend/internal/middleware"
	"spareparts-backend/internal/model"
	"spareparts-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	authService service.AuthService
}

func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// ListUsernames returns all usernames for the login selector. Public route,
// carries no sensitive fields.
// GET /api/users/usernames
func (h *UserHandler) ListUsernames(c *fiber.Ctx) error {
	usernames, err := h.authService.ListUsernames()
	if err != nil {
		return respondError(c, err)
	}
	if usernames == nil {
		usernames = []string{}
	}
	return c.JSON(fiber.Map{"usernames": usernames})
}

// ChangePasswordRequest represents the change password request body
type ChangePasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// ChangePassword updates a user's credential with a fresh salt and digest.
// Suppliers may only change their own password; admin and manager may change
// anyone's.
// POST /api/users/change-password
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}
	if rejected, err := validateBody(c, &req); rejected {
		return err
	}

	role, _ := c.Locals(middleware.CtxRoleKey).(model.Role)
	caller, _ := c.Locals(middleware.CtxUsernameKey).(string)
	if !role.Elevated() && caller != req.Username {
		return c.Status(403).JSON(fiber.Map{"message": "You may only change your own password"})
	}

	if err := h.authService.ChangePassword(req.Username, req.NewPassword); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}
