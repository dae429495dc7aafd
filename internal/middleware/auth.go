package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/wanderlust/internal/config"
	"github.com/example/wanderlust/internal/utils"
)

const adminContextKey = "currentAdminEmail"

// AdminSession reports whether admin mode is currently on.
type AdminSession interface {
	IsAdmin(ctx context.Context) bool
}

// AuthMiddleware validates the admin JWT and stores the admin email in context.
// Tokens stop working once admin mode has been switched off by a logout.
func AuthMiddleware(cfg *config.Config, session AdminSession) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		email, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		if !session.IsAdmin(c.UserContext()) {
			return fiber.NewError(fiber.StatusUnauthorized, "admin session has ended")
		}

		c.Locals(adminContextKey, email)
		return c.Next()
	}
}

// GetCurrentAdmin extracts the authenticated admin email from context.
func GetCurrentAdmin(c *fiber.Ctx) (string, bool) {
	email, ok := c.Locals(adminContextKey).(string)
	return email, ok && email != ""
}
