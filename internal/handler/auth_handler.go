package handler

import (
	"spareparts-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CredentialsRequest is the shared body of register, login and create-admin
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles new account creation (role is fixed to supplier)
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}
	if rejected, err := validateBody(c, &req); rejected {
		return err
	}

	user, err := h.authService.Register(req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(user.ToResponse())
}

// Login handles authentication
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}
	if rejected, err := validateBody(c, &req); rejected {
		return err
	}

	response, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(response)
}

// CreateAdmin handles the one-time admin bootstrap
// POST /api/auth/create-admin
func (h *AuthHandler) CreateAdmin(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}
	if rejected, err := validateBody(c, &req); rejected {
		return err
	}

	admin, err := h.authService.CreateAdmin(req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(admin.ToResponse())
}
