package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/example/wanderlust/internal/models"
)

// Patch is a typed partial update for T.
type Patch[T any] interface {
	Apply(*T)
}

type identifiable interface {
	EnsureIdentity()
}

type slugged interface {
	EntitySlug() string
}

type sluggable interface {
	slugged
	SetSlug(string)
}

// Collection is a newest-first list of entities mirrored to storage after
// every mutation. Storage failures are logged and never surface to callers;
// the in-memory list keeps the change either way.
type Collection[T models.Entity] struct {
	mu    sync.RWMutex
	items []T
	repo  *Repository[[]T]
}

// LoadCollection reads the collection from repo, falling back to defaults when
// the key is absent or unreadable.
func LoadCollection[T models.Entity](ctx context.Context, repo *Repository[[]T], defaults []T) *Collection[T] {
	items, err := repo.Load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		slog.Debug("storage_key_missing", "key", repo.Key())
		items = defaults
	case err != nil:
		slog.Warn("storage_read_failed", "key", repo.Key(), "error", err)
		items = defaults
	case items == nil:
		items = []T{}
	}
	return &Collection[T]{items: append([]T{}, items...), repo: repo}
}

// All returns a copy of the current items.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot()
}

// Len is the number of items.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get looks an item up by id.
func (c *Collection[T]) Get(id string) (T, bool) {
	return c.Find(func(item T) bool { return item.EntityID() == id })
}

// Find returns the first item matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// SlugTaken reports whether an item other than exceptID already uses slug.
func (c *Collection[T]) SlugTaken(slug, exceptID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.slugTaken(slug, exceptID)
}

// slugTaken must be called with c.mu held.
func (c *Collection[T]) slugTaken(slug, exceptID string) bool {
	for _, item := range c.items {
		s, ok := any(item).(slugged)
		if !ok {
			return false
		}
		if item.EntityID() != exceptID && s.EntitySlug() == slug {
			return true
		}
	}
	return false
}

// uniqueSlug appends -2, -3, ... to the slug of item until no other item
// uses it. It must be called with c.mu held.
func (c *Collection[T]) uniqueSlug(item *T) {
	s, ok := any(item).(sluggable)
	if !ok || s.EntitySlug() == "" {
		return
	}
	id := (*item).EntityID()
	base := s.EntitySlug()
	slug := base
	for n := 2; c.slugTaken(slug, id); n++ {
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	s.SetSlug(slug)
}

// Add places item at the front and persists. A blank id (and slug, where the
// entity has one) is filled in first; a slug already in use gets a numeric
// suffix.
func (c *Collection[T]) Add(ctx context.Context, item T) []T {
	if p, ok := any(&item).(identifiable); ok {
		p.EnsureIdentity()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.uniqueSlug(&item)
	next := make([]T, 0, len(c.items)+1)
	next = append(next, item)
	c.items = append(next, c.items...)
	c.persist(ctx)
	return c.snapshot()
}

// Update merges patch into the item with id, keeping its position. Unknown ids
// are ignored. A slug left blank is derived again and clashes get a suffix.
func (c *Collection[T]) Update(ctx context.Context, id string, patch Patch[T]) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() != id {
			continue
		}
		updated := c.items[i]
		patch.Apply(&updated)
		if p, ok := any(&updated).(identifiable); ok {
			p.EnsureIdentity()
		}
		c.uniqueSlug(&updated)
		c.items[i] = updated
		c.persist(ctx)
		break
	}
	return c.snapshot()
}

// Delete removes the item with id. Unknown ids are ignored.
func (c *Collection[T]) Delete(ctx context.Context, id string) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() != id {
			continue
		}
		next := make([]T, 0, len(c.items)-1)
		next = append(next, c.items[:i]...)
		c.items = append(next, c.items[i+1:]...)
		c.persist(ctx)
		break
	}
	return c.snapshot()
}

func (c *Collection[T]) snapshot() []T {
	return append([]T{}, c.items...)
}

// persist must be called with c.mu held.
func (c *Collection[T]) persist(ctx context.Context) {
	if err := c.repo.Save(ctx, c.items); err != nil {
		slog.Warn("storage_write_failed", "key", c.repo.Key(), "error", err)
	}
}
