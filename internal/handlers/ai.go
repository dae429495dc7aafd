package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/example/wanderlust/internal/models"
	"github.com/example/wanderlust/internal/retry"
	"github.com/example/wanderlust/internal/services"
)

// AIHandler serves the travel concierge chat and the itinerary planner.
type AIHandler struct {
	concierge *services.Concierge
	planner   *services.Planner
}

// NewAIHandler constructs AIHandler.
func NewAIHandler(concierge *services.Concierge, planner *services.Planner) *AIHandler {
	return &AIHandler{concierge: concierge, planner: planner}
}

type conciergeRequest struct {
	History []models.ChatMessage `json:"history"`
	Message string               `json:"message"`
}

// Ask answers one chat message.
func (h *AIHandler) Ask(c *fiber.Ctx) error {
	var req conciergeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	reply, err := h.concierge.Ask(c.UserContext(), req.History, req.Message)
	if err != nil {
		return aiError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": reply})
}

// Plan generates an itinerary. Saving it is a separate call.
func (h *AIHandler) Plan(c *fiber.Ctx) error {
	var req services.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	plan, err := h.planner.Plan(c.UserContext(), req)
	if err != nil {
		return aiError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": plan})
}

// aiError renders AI failures with a machine readable code so clients can tell
// configuration problems from temporary ones.
func aiError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadGateway
	code := "connection"
	message := "connection to the AI service was lost, please try again later"
	retryable := false

	switch {
	case errors.Is(err, services.ErrEmptyPrompt):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case services.IsConfigError(err):
		status = fiber.StatusServiceUnavailable
		code = "config"
		message = err.Error()
	case errors.Is(err, retry.ErrRateLimited):
		status = fiber.StatusTooManyRequests
		code = "rate_limited"
		message = "the AI service is under high demand, please retry in a moment"
		retryable = true
	}

	slog.Warn("ai_request_failed", "path", c.Path(), "code", code, "error", err)
	return c.Status(status).JSON(fiber.Map{
		"success":   false,
		"error":     message,
		"code":      code,
		"retryable": retryable,
	})
}
