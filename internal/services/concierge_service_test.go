package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/wanderlust/internal/models"
	"github.com/example/wanderlust/internal/retry"
)

type fakeGenerator struct {
	configured bool
	results    []*GenerateResult
	errs       []error
	requests   []GenerateRequest
}

func (f *fakeGenerator) Configured() bool { return f.configured }

func (f *fakeGenerator) Generate(_ context.Context, req GenerateRequest) (*GenerateResult, error) {
	i := len(f.requests)
	f.requests = append(f.requests, req)
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.results) {
		return f.results[i], nil
	}
	return &GenerateResult{Text: "ok"}, nil
}

type staticSettings models.SiteSettings

func (s staticSettings) Settings() models.SiteSettings { return models.SiteSettings(s) }

var fastRetry = []retry.Option{retry.WithBaseDelay(time.Millisecond), retry.WithMaxJitter(0)}

func TestConciergeAsk(t *testing.T) {
	t.Run("Replies with sources", func(t *testing.T) {
		gen := &fakeGenerator{
			configured: true,
			results: []*GenerateResult{{
				Text:    "Visit in spring.",
				Sources: []models.Source{{URI: "https://example.com", Title: "Example"}},
			}},
		}
		c := NewConcierge(gen, staticSettings{SiteName: "Wanderlust"}, fastRetry...)

		history := []models.ChatMessage{{Role: models.RoleUser, Text: "Hi"}, {Role: models.RoleModel, Text: "Hello!"}}
		reply, err := c.Ask(context.Background(), history, "  When should I visit Kyoto?  ")
		if err != nil {
			t.Fatalf("Ask: %v", err)
		}
		if reply.Role != models.RoleModel || reply.Text != "Visit in spring." || len(reply.Sources) != 1 {
			t.Errorf("unexpected reply %+v", reply)
		}

		req := gen.requests[0]
		if req.Prompt != "When should I visit Kyoto?" {
			t.Errorf("prompt: got %q", req.Prompt)
		}
		if len(req.History) != 2 {
			t.Errorf("history: got %d turns, want 2", len(req.History))
		}
		if !strings.Contains(req.SystemInstruction, "Wanderlust") {
			t.Errorf("system instruction does not name the site: %q", req.SystemInstruction)
		}
	})

	t.Run("Missing key makes no call", func(t *testing.T) {
		gen := &fakeGenerator{configured: false}
		c := NewConcierge(gen, staticSettings{}, fastRetry...)

		_, err := c.Ask(context.Background(), nil, "hello")
		if !errors.Is(err, ErrMissingAPIKey) || !IsConfigError(err) {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
		if len(gen.requests) != 0 {
			t.Errorf("generator called %d times", len(gen.requests))
		}
	})

	t.Run("Empty text", func(t *testing.T) {
		gen := &fakeGenerator{configured: true}
		_, err := NewConcierge(gen, staticSettings{}).Ask(context.Background(), nil, "   ")
		if !errors.Is(err, ErrEmptyPrompt) {
			t.Fatalf("expected ErrEmptyPrompt, got %v", err)
		}
	})

	t.Run("History is capped", func(t *testing.T) {
		gen := &fakeGenerator{configured: true}
		history := make([]models.ChatMessage, maxHistory+5)
		for i := range history {
			history[i] = models.ChatMessage{Role: models.RoleUser, Text: "turn"}
		}
		if _, err := NewConcierge(gen, staticSettings{}).Ask(context.Background(), history, "q"); err != nil {
			t.Fatalf("Ask: %v", err)
		}
		if got := len(gen.requests[0].History); got != maxHistory {
			t.Errorf("history: got %d, want %d", got, maxHistory)
		}
	})

	t.Run("Rate limit is retried", func(t *testing.T) {
		limited := retry.NewRemoteError(retry.KindRateLimited, errors.New("429"))
		gen := &fakeGenerator{configured: true, errs: []error{limited, nil}}

		reply, err := NewConcierge(gen, staticSettings{}, fastRetry...).Ask(context.Background(), nil, "q")
		if err != nil {
			t.Fatalf("Ask: %v", err)
		}
		if reply.Text != "ok" || len(gen.requests) != 2 {
			t.Errorf("got %q after %d calls", reply.Text, len(gen.requests))
		}
	})

	t.Run("Transport error is not retried", func(t *testing.T) {
		down := retry.NewRemoteError(retry.KindTransport, errors.New("dial tcp: refused"))
		gen := &fakeGenerator{configured: true, errs: []error{down}}

		_, err := NewConcierge(gen, staticSettings{}, fastRetry...).Ask(context.Background(), nil, "q")
		if !errors.Is(err, retry.ErrTransport) {
			t.Fatalf("expected transport error, got %v", err)
		}
		if len(gen.requests) != 1 {
			t.Errorf("calls: got %d, want 1", len(gen.requests))
		}
	})
}

func TestPlannerPlan(t *testing.T) {
	t.Run("Generates itinerary", func(t *testing.T) {
		gen := &fakeGenerator{configured: true, results: []*GenerateResult{{Text: "## Day 1"}}}
		res, err := NewPlanner(gen, fastRetry...).Plan(context.Background(), PlanRequest{
			Destination: "Lisbon",
			Duration:    4,
			Interests:   "food",
		})
		if err != nil {
			t.Fatalf("Plan: %v", err)
		}
		if res.Content != "## Day 1" {
			t.Errorf("content: got %q", res.Content)
		}
		if res.Prompt != "Plan a 4-day trip to Lisbon, focusing on food." {
			t.Errorf("prompt: got %q", res.Prompt)
		}
		if gen.requests[0].SystemInstruction == "" {
			t.Error("expected a system instruction")
		}
	})

	t.Run("Missing destination", func(t *testing.T) {
		gen := &fakeGenerator{configured: true}
		_, err := NewPlanner(gen).Plan(context.Background(), PlanRequest{Duration: 3})
		if !errors.Is(err, ErrEmptyPrompt) {
			t.Fatalf("expected ErrEmptyPrompt, got %v", err)
		}
	})

	t.Run("Missing key", func(t *testing.T) {
		gen := &fakeGenerator{}
		_, err := NewPlanner(gen).Plan(context.Background(), PlanRequest{Destination: "Rome"})
		if !errors.Is(err, ErrMissingAPIKey) {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
		if len(gen.requests) != 0 {
			t.Error("generator should not be called")
		}
	})

	t.Run("Rate limit exhausted", func(t *testing.T) {
		limited := retry.NewRemoteError(retry.KindRateLimited, errors.New("quota"))
		gen := &fakeGenerator{configured: true, errs: []error{limited, limited, limited}}

		_, err := NewPlanner(gen, fastRetry...).Plan(context.Background(), PlanRequest{Destination: "Rome"})
		if !errors.Is(err, retry.ErrRateLimited) {
			t.Fatalf("expected rate limit error, got %v", err)
		}
		if len(gen.requests) != 3 {
			t.Errorf("calls: got %d, want 3", len(gen.requests))
		}
	})
}

func TestPlanRequestPrompt(t *testing.T) {
	tests := []struct {
		name string
		req  PlanRequest
		want string
	}{
		{"Default duration", PlanRequest{Destination: "Oslo"}, "Plan a 3-day trip to Oslo."},
		{"All fields", PlanRequest{Destination: " Bali ", Duration: 7, Travelers: "a couple", Budget: "mid-range", Interests: "surfing"},
			"Plan a 7-day trip to Bali for a couple on a mid-range budget, focusing on surfing."},
		{"No destination", PlanRequest{Duration: 2, Interests: "art"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Prompt(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
