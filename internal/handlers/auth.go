package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/wanderlust/internal/config"
	"github.com/example/wanderlust/internal/middleware"
	"github.com/example/wanderlust/internal/store"
	"github.com/example/wanderlust/internal/utils"
)

// AuthHandler bundles dependencies for admin authentication endpoints.
type AuthHandler struct {
	site *store.SiteStore
	cfg  *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(site *store.SiteStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{site: site, cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks the admin credentials and issues a session token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	if !h.site.Login(c.UserContext(), email, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, email, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"admin":   fiber.Map{"email": email},
	})
}

// Logout ends admin mode. Every issued token stops working.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.site.Logout(c.UserContext())
	return c.JSON(fiber.Map{"success": true})
}

// Me returns the admin the token was issued to.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	email, ok := middleware.GetCurrentAdmin(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"email": email, "isAdmin": h.site.IsAdmin(c.UserContext())},
	})
}
