package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/wanderlust/internal/models"
)

// Gorm stores each key as a row of the storage_entries table.
type Gorm struct {
	db       *gorm.DB
	maxBytes int
}

// NewGorm wraps an initialized gorm.DB. maxBytes <= 0 disables the quota.
func NewGorm(db *gorm.DB, maxBytes int) *Gorm {
	return &Gorm{db: db, maxBytes: maxBytes}
}

func (g *Gorm) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.StorageEntry
	err := g.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return entry.Value, true, nil
}

func (g *Gorm) Set(ctx context.Context, key, value string) error {
	if g.maxBytes > 0 && len(value) > g.maxBytes {
		return fmt.Errorf("set %s (%d bytes): %w", key, len(value), ErrQuotaExceeded)
	}
	entry := models.StorageEntry{Key: key, Value: value}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (g *Gorm) Remove(ctx context.Context, key string) error {
	if err := g.db.WithContext(ctx).Delete(&models.StorageEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
