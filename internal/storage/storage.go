// Package storage provides the string-keyed blob stores the site store
// persists into. Each backend stores one JSON document per key.
package storage

import (
	"context"
	"errors"
)

// Keys of the persisted site collections.
const (
	KeySettings     = "wl_settings"
	KeyBlogPosts    = "wl_blog_posts"
	KeyDestinations = "wl_destinations"
	KeyDeals        = "wl_deals"
	KeyGear         = "wl_gear"
	KeyMessages     = "wl_messages"
	KeyItineraries  = "wl_itineraries"

	// KeyAdminSession lives in session storage only.
	KeyAdminSession = "wl_is_admin"
)

// ErrQuotaExceeded is returned when a value is larger than the backend accepts.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Storage is a minimal key/value store.
type Storage interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
