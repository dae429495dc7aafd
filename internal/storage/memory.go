package storage

import (
	"context"
	"fmt"
	"sync"
)

// Memory keeps values in process memory. It doubles as session storage:
// everything is gone when the process exits.
type Memory struct {
	mu       sync.RWMutex
	values   map[string]string
	maxBytes int
}

// NewMemory builds an empty store. maxBytes <= 0 disables the quota.
func NewMemory(maxBytes int) *Memory {
	return &Memory{values: make(map[string]string), maxBytes: maxBytes}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	if m.maxBytes > 0 && len(value) > m.maxBytes {
		return fmt.Errorf("set %s (%d bytes): %w", key, len(value), ErrQuotaExceeded)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
