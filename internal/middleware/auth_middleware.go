package middleware

import (
	"strings"

	"spareparts-backend/internal/model"
	"spareparts-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const (
	CtxUsernameKey = "username"
	CtxRoleKey     = "role"
)

// RequireAuth validates the bearer token on every request and puts the
// claimed identity into the context. It fails closed: no token, a malformed
// header, or a bad signature all stop the request before the handler runs.
func RequireAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"message": "No authentication token, access denied"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"message": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(secret, parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"message": "Token verification failed, authorization denied"})
		}

		c.Locals(CtxUsernameKey, claims.Username)
		c.Locals(CtxRoleKey, model.Role(claims.Role))

		return c.Next()
	}
}

// RequireElevated passes only admin and manager roles. A valid token with a
// supplier role gets a 403, distinct from the unauthenticated 401.
func RequireElevated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(CtxRoleKey).(model.Role)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"message": "Authentication required"})
		}

		if !role.Elevated() {
			return c.Status(403).JSON(fiber.Map{"message": "Admin/Manager access required"})
		}

		return c.Next()
	}
}
