package middleware

import (
	"errors"
	"strings"

	"linha-viva/internal/service"
	"linha-viva/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin validates the bearer token against the current admin session
// and stores the actor in the context.
func RequireAdmin(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := authService.ValidateToken(parts[1])
		switch {
		case errors.Is(err, service.ErrSessionExpired):
			return c.Status(401).JSON(fiber.Map{"error": "Session expired"})
		case errors.Is(err, jwt.ErrInvalidToken), errors.Is(err, jwt.ErrMissingToken):
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		case err != nil:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to check session"})
		}

		c.Locals(ActorKey, claims.Role)
		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// Context keys set by RequireAdmin.
const (
	ActorKey  = "actor"
	ClaimsKey = "claims"
)
