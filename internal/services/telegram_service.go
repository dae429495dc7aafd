package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/wanderlust/internal/models"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
	apiBase     string
	client      *http.Client
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
		apiBase:     telegramAPIBase,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(ctx context.Context, chatID, text string) error {
	if s.botToken == "" {
		slog.Debug("telegram_not_configured")
		return nil
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.botToken)

	body, err := json.Marshal(telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Warn("telegram_send_failed", "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("telegram_unexpected_status", "status", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(ctx context.Context, text string) error {
	if s.adminChatID == "" {
		slog.Debug("telegram_admin_chat_not_configured")
		return nil
	}
	return s.SendMessage(ctx, s.adminChatID, text)
}

// NotifyNewMessage tells the admin chat about a contact form submission.
func (s *TelegramService) NotifyNewMessage(ctx context.Context, msg models.ContactMessage) error {
	return s.SendToAdmin(ctx, FormatContactMessage(msg))
}

// FormatContactMessage renders a contact message as Telegram HTML.
func FormatContactMessage(msg models.ContactMessage) string {
	var sb strings.Builder
	sb.WriteString("<b>New contact message</b>\n\n")
	fmt.Fprintf(&sb, "<b>From:</b> %s &lt;%s&gt;\n", html.EscapeString(msg.Name), html.EscapeString(msg.Email))
	if msg.Subject != "" {
		fmt.Fprintf(&sb, "<b>Subject:</b> %s\n", html.EscapeString(msg.Subject))
	}
	fmt.Fprintf(&sb, "<b>Date:</b> %s\n\n", html.EscapeString(msg.CreatedAt))
	sb.WriteString(html.EscapeString(msg.Message))
	return sb.String()
}
