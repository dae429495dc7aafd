package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/wanderlust/internal/models"
	"github.com/example/wanderlust/internal/store"
)

// ItineraryHandler manages saved planner results.
type ItineraryHandler struct {
	items *store.ItineraryStore
}

// NewItineraryHandler constructs ItineraryHandler.
func NewItineraryHandler(items *store.ItineraryStore) *ItineraryHandler {
	return &ItineraryHandler{items: items}
}

func (h *ItineraryHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.items.List()})
}

func (h *ItineraryHandler) Save(c *fiber.Ctx) error {
	var input models.ItineraryInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.Prompt) == "" || strings.TrimSpace(input.Content) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	it := h.items.Save(c.UserContext(), input)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": it})
}

func (h *ItineraryHandler) Delete(c *fiber.Ctx) error {
	h.items.Delete(c.UserContext(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
