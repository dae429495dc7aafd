// Package store holds the site content in memory and mirrors every change to
// a storage backend. Its operations never fail from the caller's point of
// view: storage problems are logged and the in-memory state stays usable.
package store

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/example/wanderlust/internal/models"
	"github.com/example/wanderlust/internal/storage"
)

const sessionFlagValue = "true"

// SiteStore owns site settings, content collections, contact messages and the
// admin session flag. Build one per process with New and share the pointer.
type SiteStore struct {
	mu           sync.RWMutex
	settings     models.SiteSettings
	settingsRepo *Repository[models.SiteSettings]

	blogPosts    *Collection[models.BlogPost]
	destinations *Collection[models.Destination]
	deals        *Collection[models.Deal]
	gear         *Collection[models.GearProduct]
	messages     *Collection[models.ContactMessage]

	session storage.Storage
	admin   bool

	now           func() time.Time
	lastMessageID int64
}

// Option customises a SiteStore.
type Option func(*SiteStore)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *SiteStore) {
		s.now = now
	}
}

// New loads every collection from persistent storage and the admin flag from
// session storage. Missing or unreadable data falls back to the built-in defaults.
func New(ctx context.Context, persistent, session storage.Storage, opts ...Option) *SiteStore {
	s := &SiteStore{
		settingsRepo: NewRepository[models.SiteSettings](persistent, storage.KeySettings),
		session:      session,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.settings = loadSettings(ctx, s.settingsRepo)
	s.blogPosts = LoadCollection(ctx, NewRepository[[]models.BlogPost](persistent, storage.KeyBlogPosts), defaultBlogPosts())
	s.destinations = LoadCollection(ctx, NewRepository[[]models.Destination](persistent, storage.KeyDestinations), defaultDestinations())
	s.deals = LoadCollection(ctx, NewRepository[[]models.Deal](persistent, storage.KeyDeals), defaultDeals())
	s.gear = LoadCollection(ctx, NewRepository[[]models.GearProduct](persistent, storage.KeyGear), defaultGear())
	s.messages = LoadCollection(ctx, NewRepository[[]models.ContactMessage](persistent, storage.KeyMessages), []models.ContactMessage{})

	for _, m := range s.messages.All() {
		if id, err := strconv.ParseInt(m.ID, 10, 64); err == nil && id > s.lastMessageID {
			s.lastMessageID = id
		}
	}

	flag, ok, err := session.Get(ctx, storage.KeyAdminSession)
	if err != nil {
		slog.Warn("session_read_failed", "key", storage.KeyAdminSession, "error", err)
	}
	s.admin = ok && flag == sessionFlagValue

	return s
}

// loadSettings decodes stored settings over the defaults so fields added to
// the defaults after the data was written, including nested Ads and Contact
// fields, keep their default value.
func loadSettings(ctx context.Context, repo *Repository[models.SiteSettings]) models.SiteSettings {
	settings, err := repo.LoadOnto(ctx, defaultSettings())
	switch {
	case errors.Is(err, ErrNotFound):
		slog.Debug("storage_key_missing", "key", repo.Key())
		return defaultSettings()
	case err != nil:
		slog.Warn("storage_read_failed", "key", repo.Key(), "error", err)
		return defaultSettings()
	}
	return settings
}

// Settings returns a copy of the current settings.
func (s *SiteStore) Settings() models.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// UpdateSettings merges patch into the settings, persists and returns the result.
func (s *SiteStore) UpdateSettings(ctx context.Context, patch models.SettingsPatch) models.SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings.Clone()
	patch.Apply(&next)
	s.settings = next

	if err := s.settingsRepo.Save(ctx, s.settings); err != nil {
		slog.Warn("storage_write_failed", "key", s.settingsRepo.Key(), "error", err)
	}
	return s.settings.Clone()
}

func (s *SiteStore) BlogPosts() *Collection[models.BlogPost]       { return s.blogPosts }
func (s *SiteStore) Destinations() *Collection[models.Destination] { return s.destinations }
func (s *SiteStore) Deals() *Collection[models.Deal]               { return s.deals }
func (s *SiteStore) Gear() *Collection[models.GearProduct]         { return s.gear }

// Messages returns the contact inbox, newest first.
func (s *SiteStore) Messages() []models.ContactMessage {
	return s.messages.All()
}

// AddMessage records a contact form submission with status new. Ids are
// millisecond timestamps, bumped when two arrive in the same millisecond.
func (s *SiteStore) AddMessage(ctx context.Context, in models.MessageInput) models.ContactMessage {
	s.mu.Lock()
	now := s.now()
	id := now.UnixMilli()
	if id <= s.lastMessageID {
		id = s.lastMessageID + 1
	}
	s.lastMessageID = id
	s.mu.Unlock()

	msg := models.ContactMessage{
		ID:        strconv.FormatInt(id, 10),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: now.UTC().Format(time.RFC3339),
		Status:    models.MessageNew,
	}
	s.messages.Add(ctx, msg)
	return msg
}

type markRead struct{}

func (markRead) Apply(m *models.ContactMessage) {
	if m.Status == models.MessageNew {
		m.Status = models.MessageRead
	}
}

// MarkMessageRead moves a new message to read. Other statuses are kept.
func (s *SiteStore) MarkMessageRead(ctx context.Context, id string) []models.ContactMessage {
	return s.messages.Update(ctx, id, markRead{})
}

// DeleteMessage removes a message. Unknown ids are ignored.
func (s *SiteStore) DeleteMessage(ctx context.Context, id string) []models.ContactMessage {
	return s.messages.Delete(ctx, id)
}

// Login checks the credentials against the settings; blank stored credentials
// never match. On success admin mode is switched on and recorded in session
// storage. On failure nothing changes.
func (s *SiteStore) Login(ctx context.Context, email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings.AdminEmail == "" || s.settings.AdminPassword == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.settings.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.settings.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		return false
	}

	s.admin = true
	if err := s.session.Set(ctx, storage.KeyAdminSession, sessionFlagValue); err != nil {
		slog.Warn("session_write_failed", "key", storage.KeyAdminSession, "error", err)
	}
	return true
}

// Logout switches admin mode off and clears the session flag.
func (s *SiteStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.admin = false
	if err := s.session.Remove(ctx, storage.KeyAdminSession); err != nil {
		slog.Warn("session_write_failed", "key", storage.KeyAdminSession, "error", err)
	}
}

// IsAdmin reports whether admin mode is on. Session storage is the source of
// truth, so an expired or removed flag ends admin mode; the last known value
// is used only when the session cannot be read.
func (s *SiteStore) IsAdmin(ctx context.Context) bool {
	flag, ok, err := s.session.Get(ctx, storage.KeyAdminSession)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		slog.Warn("session_read_failed", "key", storage.KeyAdminSession, "error", err)
		return s.admin
	}
	s.admin = ok && flag == sessionFlagValue
	return s.admin
}
