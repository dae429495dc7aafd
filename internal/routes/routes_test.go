package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/wanderlust/internal/config"
	"github.com/example/wanderlust/internal/handlers"
	"github.com/example/wanderlust/internal/models"
	"github.com/example/wanderlust/internal/retry"
	"github.com/example/wanderlust/internal/services"
	"github.com/example/wanderlust/internal/storage"
	"github.com/example/wanderlust/internal/store"
)

const (
	adminEmail    = "admin@wanderlust.example.com"
	adminPassword = "admin123"
)

type stubGenerator struct {
	configured bool
	err        error
	calls      int
}

func (g *stubGenerator) Configured() bool { return g.configured }

func (g *stubGenerator) Generate(_ context.Context, req services.GenerateRequest) (*services.GenerateResult, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return &services.GenerateResult{
		Text:    "Answer to: " + req.Prompt,
		Sources: []models.Source{{URI: "https://example.com", Title: "Example"}},
	}, nil
}

type recordingNotifier struct {
	sent []models.ContactMessage
}

func (n *recordingNotifier) NotifyNewMessage(_ context.Context, msg models.ContactMessage) error {
	n.sent = append(n.sent, msg)
	return nil
}

type testEnv struct {
	app      *fiber.App
	site     *store.SiteStore
	session  *storage.Memory
	gen      *stubGenerator
	notifier *recordingNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	persistent := storage.NewMemory(0)
	session := storage.NewMemory(0)
	site := store.New(ctx, persistent, session)
	env := &testEnv{
		site:     site,
		session:  session,
		gen:      &stubGenerator{configured: true},
		notifier: &recordingNotifier{},
	}

	cfg := &config.Config{JWTSecret: "test-secret", TokenExpires: time.Hour, AIRatePerMinute: 1000}
	env.app = fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	Register(env.app, cfg, Dependencies{
		Site:         site,
		Itineraries:  store.NewItineraryStore(ctx, persistent, nil),
		Generator:    env.gen,
		Notifier:     env.notifier,
		RetryOptions: []retry.Option{retry.WithBaseDelay(time.Millisecond), retry.WithMaxJitter(0)},
	})
	return env
}

type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	Code       string          `json:"code"`
	Retryable  bool            `json:"retryable"`
	Token      string          `json:"token"`
	Unread     int             `json:"unread"`
	Pagination map[string]int  `json:"pagination"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("%s %s: decode response: %v", method, path, err)
		}
	}
	return resp.StatusCode, env
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	status, env := e.do(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"email": adminEmail, "password": adminPassword,
	})
	if status != http.StatusOK || env.Token == "" {
		t.Fatalf("login: status %d, error %q", status, env.Error)
	}
	return env.Token
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode data: %v (%s)", err, raw)
	}
	return v
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	status, body := env.do(t, http.MethodGet, "/api/health", "", nil)
	if status != http.StatusOK || !body.Success {
		t.Fatalf("status %d, body %+v", status, body)
	}
}

func TestPublicSettingsHideCredentials(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodGet, "/api/settings", "", nil)
	if status != http.StatusOK {
		t.Fatalf("status %d", status)
	}
	settings := decode[models.SiteSettings](t, body.Data)
	if settings.SiteName != "Wanderlust" {
		t.Errorf("SiteName: got %q", settings.SiteName)
	}
	if settings.AdminEmail != "" || settings.AdminPassword != "" {
		t.Error("public settings leaked admin credentials")
	}

	status, body = env.do(t, http.MethodGet, "/api/seo", "", nil)
	if status != http.StatusOK {
		t.Fatalf("seo status %d", status)
	}
	if meta := decode[map[string]any](t, body.Data); meta["title"] == "" {
		t.Errorf("seo title missing: %v", meta)
	}
}

func TestAdminSession(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"email": adminEmail, "password": "wrong",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("bad password: got %d, want 401", status)
	}
	if env.site.IsAdmin(context.Background()) {
		t.Fatal("failed login switched admin mode on")
	}

	status, _ = env.do(t, http.MethodGet, "/api/admin/me", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("no token: got %d, want 401", status)
	}

	token := env.login(t)
	if !env.site.IsAdmin(context.Background()) {
		t.Fatal("login did not switch admin mode on")
	}

	status, body := env.do(t, http.MethodPut, "/api/admin/settings", token, map[string]any{
		"siteName": "Wanderlust Pro",
		"ads":      map[string]any{"enabled": true},
	})
	if status != http.StatusOK {
		t.Fatalf("update settings: status %d, error %q", status, body.Error)
	}
	updated := decode[models.SiteSettings](t, body.Data)
	if updated.SiteName != "Wanderlust Pro" || !updated.Ads.Enabled {
		t.Errorf("settings not merged: %+v", updated)
	}
	if updated.HeroTitle == "" {
		t.Error("untouched fields were cleared")
	}

	status, _ = env.do(t, http.MethodPut, "/api/admin/settings", token, map[string]any{"adminEmail": "not-an-email"})
	if status != http.StatusBadRequest {
		t.Errorf("invalid admin email: got %d, want 400", status)
	}

	status, _ = env.do(t, http.MethodPost, "/api/admin/logout", "", nil)
	if status != http.StatusOK {
		t.Fatalf("logout: status %d", status)
	}
	status, _ = env.do(t, http.MethodGet, "/api/admin/me", token, nil)
	if status != http.StatusUnauthorized {
		t.Errorf("token after logout: got %d, want 401", status)
	}
}

func TestBlogCRUD(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	status, _ := env.do(t, http.MethodPost, "/api/admin/blog", "", map[string]any{"title": "x"})
	if status != http.StatusUnauthorized {
		t.Fatalf("create without token: got %d, want 401", status)
	}

	status, body := env.do(t, http.MethodPost, "/api/admin/blog", token, map[string]any{
		"title":   "Hello World!",
		"content": "First post",
		"tags":    []string{"Europe"},
	})
	if status != http.StatusCreated {
		t.Fatalf("create: status %d, error %q", status, body.Error)
	}
	post := decode[models.BlogPost](t, body.Data)
	if post.ID == "" || post.Slug != "hello-world" || post.Date == "" {
		t.Fatalf("identity not filled in: %+v", post)
	}

	status, body = env.do(t, http.MethodGet, "/api/blog?page=1&limit=2", "", nil)
	if status != http.StatusOK {
		t.Fatalf("list: status %d", status)
	}
	posts := decode[[]models.BlogPost](t, body.Data)
	if len(posts) != 2 || posts[0].ID != post.ID {
		t.Errorf("new post should lead the first page, got %+v", posts)
	}
	if body.Pagination["total_items"] != 3 {
		t.Errorf("total_items: got %d, want 3", body.Pagination["total_items"])
	}

	status, body = env.do(t, http.MethodGet, "/api/blog?tag=europe", "", nil)
	if status != http.StatusOK || len(decode[[]models.BlogPost](t, body.Data)) != 1 {
		t.Errorf("tag filter: status %d, data %s", status, body.Data)
	}

	status, body = env.do(t, http.MethodPut, "/api/admin/blog/"+post.ID, token, map[string]any{"title": "Hello Again"})
	if status != http.StatusOK {
		t.Fatalf("update: status %d", status)
	}
	if got := decode[models.BlogPost](t, body.Data); got.Title != "Hello Again" || got.Content != "First post" || got.Slug != "hello-world" {
		t.Errorf("update merged wrongly: %+v", got)
	}

	status, body = env.do(t, http.MethodGet, "/api/blog/hello-world", "", nil)
	if status != http.StatusOK || decode[models.BlogPost](t, body.Data).ID != post.ID {
		t.Errorf("get by slug: status %d", status)
	}

	status, _ = env.do(t, http.MethodPut, "/api/admin/blog/missing", token, map[string]any{"title": "x"})
	if status != http.StatusNotFound {
		t.Errorf("update missing: got %d, want 404", status)
	}

	status, _ = env.do(t, http.MethodDelete, "/api/admin/blog/"+post.ID, token, nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete: status %d", status)
	}
	status, _ = env.do(t, http.MethodGet, "/api/blog/hello-world", "", nil)
	if status != http.StatusNotFound {
		t.Errorf("deleted post still served: %d", status)
	}
	if env.site.BlogPosts().Len() != 2 {
		t.Errorf("posts left: got %d, want 2", env.site.BlogPosts().Len())
	}
}

func TestDealsCategoryAndDiscount(t *testing.T) {
	env := newTestEnv(t)

	type dealView struct {
		models.Deal
		DiscountPercent int `json:"discountPercent"`
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"All deals", "", []string{"deal1", "deal2"}},
		{"All keyword", "?category=All", []string{"deal1", "deal2"}},
		{"Tours", "?category=Tours", []string{"deal2"}},
		{"Unknown", "?category=Cruises", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := env.do(t, http.MethodGet, "/api/deals"+tt.query, "", nil)
			if status != http.StatusOK {
				t.Fatalf("status %d", status)
			}
			deals := decode[[]dealView](t, body.Data)
			if len(deals) != len(tt.want) {
				t.Fatalf("got %d deals, want %d", len(deals), len(tt.want))
			}
			for i, id := range tt.want {
				if deals[i].ID != id {
					t.Errorf("deal %d: got %q, want %q", i, deals[i].ID, id)
				}
			}
		})
	}

	_, body := env.do(t, http.MethodGet, "/api/deals/bali-beach-resort-7-nights", "", nil)
	if got := decode[dealView](t, body.Data); got.DiscountPercent != 31 {
		t.Errorf("discountPercent: got %d, want 31", got.DiscountPercent)
	}
}

func TestContactMessages(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{"name": "Ana", "email": "bad", "message": "Hi"})
	if status != http.StatusBadRequest {
		t.Fatalf("invalid email: got %d, want 400", status)
	}

	status, body := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Ana", "email": "ana@example.com", "subject": "Trip", "message": "Hello there",
	})
	if status != http.StatusCreated {
		t.Fatalf("submit: status %d, error %q", status, body.Error)
	}
	msg := decode[models.ContactMessage](t, body.Data)
	if msg.Status != models.MessageNew || msg.ID == "" {
		t.Fatalf("unexpected message %+v", msg)
	}
	if len(env.notifier.sent) != 1 || env.notifier.sent[0].ID != msg.ID {
		t.Errorf("notifier got %+v", env.notifier.sent)
	}

	token := env.login(t)
	status, body = env.do(t, http.MethodGet, "/api/admin/messages", token, nil)
	if status != http.StatusOK || body.Unread != 1 {
		t.Fatalf("list: status %d, unread %d", status, body.Unread)
	}

	status, body = env.do(t, http.MethodPut, "/api/admin/messages/"+msg.ID+"/read", token, nil)
	if status != http.StatusOK || decode[models.ContactMessage](t, body.Data).Status != models.MessageRead {
		t.Fatalf("mark read: status %d, data %s", status, body.Data)
	}

	status, _ = env.do(t, http.MethodPut, "/api/admin/messages/unknown/read", token, nil)
	if status != http.StatusNotFound {
		t.Errorf("mark unknown: got %d, want 404", status)
	}

	status, _ = env.do(t, http.MethodDelete, "/api/admin/messages/"+msg.ID, token, nil)
	if status != http.StatusNoContent || len(env.site.Messages()) != 0 {
		t.Errorf("delete: status %d, left %d", status, len(env.site.Messages()))
	}
}

func TestAIErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		configured bool
		err        error
		status     int
		code       string
		retryable  bool
		calls      int
	}{
		{"Success", true, nil, http.StatusOK, "", false, 1},
		{"Missing key", false, nil, http.StatusServiceUnavailable, "config", false, 0},
		{"Rejected key", true, services.ErrInvalidAPIKey, http.StatusServiceUnavailable, "config", false, 1},
		{"Rate limited", true, retry.NewRemoteError(retry.KindRateLimited, errors.New("429")), http.StatusTooManyRequests, "rate_limited", true, 3},
		{"Transport", true, retry.NewRemoteError(retry.KindTransport, errors.New("reset")), http.StatusBadGateway, "connection", false, 1},
		{"Empty answer", true, retry.NewRemoteError(retry.KindInvalidResponse, errors.New("no text")), http.StatusBadGateway, "connection", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.gen.configured = tt.configured
			env.gen.err = tt.err

			status, body := env.do(t, http.MethodPost, "/api/ai/concierge", "", map[string]any{
				"message": "Best time to visit Kyoto?",
			})
			if status != tt.status {
				t.Fatalf("status: got %d, want %d (%q)", status, tt.status, body.Error)
			}
			if body.Code != tt.code || body.Retryable != tt.retryable {
				t.Errorf("got code %q retryable %v", body.Code, body.Retryable)
			}
			if env.gen.calls != tt.calls {
				t.Errorf("generator calls: got %d, want %d", env.gen.calls, tt.calls)
			}
		})
	}
}

func TestPlanAndSaveItinerary(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodPost, "/api/ai/itinerary", "", map[string]any{"duration": 3})
	if status != http.StatusBadRequest {
		t.Fatalf("missing destination: got %d, want 400", status)
	}

	status, body := env.do(t, http.MethodPost, "/api/ai/itinerary", "", map[string]any{
		"destination": "Lisbon", "duration": 3,
	})
	if status != http.StatusOK {
		t.Fatalf("plan: status %d, error %q", status, body.Error)
	}
	plan := decode[services.PlanResult](t, body.Data)

	status, body = env.do(t, http.MethodPost, "/api/itineraries", "", models.ItineraryInput{
		Prompt: plan.Prompt, Destination: "Lisbon", Duration: "3", Content: plan.Content,
	})
	if status != http.StatusCreated {
		t.Fatalf("save: status %d, error %q", status, body.Error)
	}
	saved := decode[models.Itinerary](t, body.Data)
	if saved.Title != "Plan a 3-day trip to Lisbon." {
		t.Errorf("title: got %q", saved.Title)
	}

	_, body = env.do(t, http.MethodGet, "/api/itineraries", "", nil)
	if list := decode[[]models.Itinerary](t, body.Data); len(list) != 1 || list[0].ID != saved.ID {
		t.Fatalf("list: %+v", list)
	}

	status, _ = env.do(t, http.MethodDelete, "/api/itineraries/"+saved.ID, "", nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete: status %d", status)
	}
	_, body = env.do(t, http.MethodGet, "/api/itineraries", "", nil)
	if list := decode[[]models.Itinerary](t, body.Data); len(list) != 0 {
		t.Errorf("itinerary not deleted: %+v", list)
	}
}

func TestContentSlugConflicts(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	_, body := env.do(t, http.MethodPost, "/api/admin/blog", token, map[string]any{"title": "Hello World"})
	first := decode[models.BlogPost](t, body.Data)

	status, body := env.do(t, http.MethodPost, "/api/admin/blog", token, map[string]any{"title": "Hello World"})
	if status != http.StatusCreated {
		t.Fatalf("second post: status %d, error %q", status, body.Error)
	}
	second := decode[models.BlogPost](t, body.Data)
	if second.Slug != "hello-world-2" {
		t.Errorf("derived slug: got %q, want hello-world-2", second.Slug)
	}

	tests := []struct {
		name   string
		method string
		path   string
		body   map[string]any
		want   int
	}{
		{"Create with used slug", http.MethodPost, "/api/admin/blog", map[string]any{"title": "X", "slug": "hello-world"}, http.StatusConflict},
		{"Create with used destination slug", http.MethodPost, "/api/admin/destinations", map[string]any{"name": "Kyoto Again", "slug": "kyoto"}, http.StatusConflict},
		{"Update to used slug", http.MethodPut, "/api/admin/blog/" + second.ID, map[string]any{"slug": "hello-world"}, http.StatusConflict},
		{"Update to blank slug", http.MethodPut, "/api/admin/blog/" + second.ID, map[string]any{"slug": ""}, http.StatusBadRequest},
		{"Update keeping own slug", http.MethodPut, "/api/admin/blog/" + first.ID, map[string]any{"slug": "hello-world", "excerpt": "x"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := env.do(t, tt.method, tt.path, token, tt.body)
			if status != tt.want {
				t.Errorf("status: got %d, want %d (%q)", status, tt.want, body.Error)
			}
		})
	}

	for _, p := range []models.BlogPost{first, second} {
		status, body := env.do(t, http.MethodGet, "/api/blog/"+p.Slug, "", nil)
		if status != http.StatusOK || decode[models.BlogPost](t, body.Data).ID != p.ID {
			t.Errorf("slug %q does not resolve to %s", p.Slug, p.ID)
		}
	}
}

func TestBlogHugePageIsEmpty(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodGet, "/api/blog?page=461168601842738792&limit=20", "", nil)
	if status != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (%q)", status, body.Error)
	}
	if posts := decode[[]models.BlogPost](t, body.Data); len(posts) != 0 {
		t.Errorf("expected an empty page, got %d posts", len(posts))
	}
}

func TestAdminModeFollowsSessionStorage(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	if err := env.session.Remove(context.Background(), storage.KeyAdminSession); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	status, _ := env.do(t, http.MethodGet, "/api/admin/me", token, nil)
	if status != http.StatusUnauthorized {
		t.Errorf("expired session: got %d, want 401", status)
	}
}
