package handlers

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/wanderlust/internal/models"
	"github.com/example/wanderlust/internal/seo"
	"github.com/example/wanderlust/internal/store"
)

// SettingsHandler manages site settings endpoints.
type SettingsHandler struct {
	site *store.SiteStore
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(site *store.SiteStore) *SettingsHandler {
	return &SettingsHandler{site: site}
}

// GetSettings returns the public settings without admin credentials.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.site.Settings().Public()})
}

// GetSEO returns the page metadata derived from the settings.
func (h *SettingsHandler) GetSEO(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": seo.MetaTags(h.site.Settings())})
}

// GetAdminSettings returns the full settings, credentials included (admin endpoint).
func (h *SettingsHandler) GetAdminSettings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.site.Settings()})
}

// UpdateSettings merges the request body into the settings (admin endpoint).
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var patch models.SettingsPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validateSettingsPatch(&patch); err != nil {
		return err
	}

	settings := h.site.UpdateSettings(c.UserContext(), patch)
	return c.JSON(fiber.Map{"success": true, "data": settings})
}

func validateSettingsPatch(p *models.SettingsPatch) error {
	if p.AdminEmail != nil {
		email := strings.TrimSpace(*p.AdminEmail)
		if _, err := mail.ParseAddress(email); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid admin email format")
		}
		p.AdminEmail = &email
	}
	if p.AdminPassword != nil && *p.AdminPassword == "" {
		return fiber.NewError(fiber.StatusBadRequest, "admin password cannot be empty")
	}
	if p.Contact != nil && p.Contact.Email != nil && strings.TrimSpace(*p.Contact.Email) != "" {
		if _, err := mail.ParseAddress(*p.Contact.Email); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid contact email format")
		}
	}
	return nil
}
