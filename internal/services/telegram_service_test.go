package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/wanderlust/internal/models"
)

func TestTelegramService_NotifyNewMessage(t *testing.T) {
	var got telegramMessage
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewTelegramService("token", "42")
	s.apiBase = srv.URL

	err := s.NotifyNewMessage(context.Background(), models.ContactMessage{
		Name:    "Ana <script>",
		Email:   "ana@example.com",
		Subject: "Trip",
		Message: "Hello & thanks",
	})
	if err != nil {
		t.Fatalf("NotifyNewMessage: %v", err)
	}
	if path != "/bottoken/sendMessage" {
		t.Errorf("path: got %q", path)
	}
	if got.ChatID != "42" || got.ParseMode != "HTML" {
		t.Errorf("unexpected payload %+v", got)
	}
	if strings.Contains(got.Text, "<script>") || !strings.Contains(got.Text, "Hello &amp; thanks") {
		t.Errorf("text not escaped: %q", got.Text)
	}
}

func TestTelegramService_Errors(t *testing.T) {
	t.Run("Unconfigured is a no-op", func(t *testing.T) {
		if err := NewTelegramService("", "").SendToAdmin(context.Background(), "hi"); err != nil {
			t.Errorf("got %v", err)
		}
		if err := NewTelegramService("token", "").SendToAdmin(context.Background(), "hi"); err != nil {
			t.Errorf("got %v", err)
		}
	})

	t.Run("Non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		s := NewTelegramService("token", "42")
		s.apiBase = srv.URL
		if err := s.SendToAdmin(context.Background(), "hi"); err == nil {
			t.Error("expected an error")
		}
	})
}
