package models

import "time"

// StorageEntry is one key/value blob in the persistent site storage.
type StorageEntry struct {
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name used by the storage backend.
func (StorageEntry) TableName() string {
	return "storage_entries"
}
