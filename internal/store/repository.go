package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/example/wanderlust/internal/storage"
)

// ErrNotFound is returned by Repository.Load when nothing is stored under the key.
var ErrNotFound = errors.New("not found in storage")

// Repository persists one value of type T as JSON under a single storage key.
type Repository[T any] struct {
	storage storage.Storage
	key     string
}

// NewRepository binds a repository to key.
func NewRepository[T any](s storage.Storage, key string) *Repository[T] {
	return &Repository[T]{storage: s, key: key}
}

// Key is the storage key the repository reads and writes.
func (r *Repository[T]) Key() string {
	return r.key
}

// Load decodes the stored value.
func (r *Repository[T]) Load(ctx context.Context) (T, error) {
	var zero T
	return r.LoadOnto(ctx, zero)
}

// LoadOnto decodes the stored value over base, so fields missing from the
// stored JSON keep the value they have in base. base must not share slices or
// maps the caller still uses.
func (r *Repository[T]) LoadOnto(ctx context.Context, base T) (T, error) {
	raw, ok, err := r.storage.Get(ctx, r.key)
	if err != nil {
		return base, err
	}
	if !ok {
		return base, ErrNotFound
	}
	out := base
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return base, fmt.Errorf("decode %s: %w", r.key, err)
	}
	return out, nil
}

// Save encodes v and writes it under the repository key.
func (r *Repository[T]) Save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	return r.storage.Set(ctx, r.key, string(data))
}
