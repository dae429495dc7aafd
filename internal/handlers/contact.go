package handlers

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/wanderlust/internal/models"
	"github.com/example/wanderlust/internal/store"
)

const notifyTimeout = 5 * time.Second

// MessageNotifier is told about every new contact message.
type MessageNotifier interface {
	NotifyNewMessage(ctx context.Context, msg models.ContactMessage) error
}

// ContactHandler manages the contact form and the admin inbox.
type ContactHandler struct {
	site     *store.SiteStore
	notifier MessageNotifier
}

// NewContactHandler constructs ContactHandler. notifier may be nil.
func NewContactHandler(site *store.SiteStore, notifier MessageNotifier) *ContactHandler {
	return &ContactHandler{site: site, notifier: notifier}
}

func validateMessageInput(in *models.MessageInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)

	if in.Name == "" || in.Email == "" || in.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
	}
	return nil
}

// Submit records a contact form message (public endpoint).
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var input models.MessageInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validateMessageInput(&input); err != nil {
		return err
	}

	msg := h.site.AddMessage(c.UserContext(), input)

	if h.notifier != nil {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := h.notifier.NotifyNewMessage(ctx, msg); err != nil {
			slog.Warn("contact_notification_failed", "message_id", msg.ID, "error", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": msg})
}

// ListMessages returns the inbox, newest first (admin endpoint).
func (h *ContactHandler) ListMessages(c *fiber.Ctx) error {
	messages := h.site.Messages()

	status := models.MessageStatus(c.Query("status"))
	if status != "" {
		filtered := make([]models.ContactMessage, 0, len(messages))
		for _, m := range messages {
			if m.Status == status {
				filtered = append(filtered, m)
			}
		}
		messages = filtered
	}

	unread := 0
	for _, m := range h.site.Messages() {
		if m.Status == models.MessageNew {
			unread++
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": messages, "unread": unread})
}

// MarkRead moves a message from new to read (admin endpoint).
func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("id")
	for _, m := range h.site.MarkMessageRead(c.UserContext(), id) {
		if m.ID == id {
			return c.JSON(fiber.Map{"success": true, "data": m})
		}
	}
	return fiber.NewError(fiber.StatusNotFound, "message not found")
}

// DeleteMessage removes a message (admin endpoint).
func (h *ContactHandler) DeleteMessage(c *fiber.Ctx) error {
	h.site.DeleteMessage(c.UserContext(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
