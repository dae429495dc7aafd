package models

import "github.com/google/uuid"

// Entity is any record kept in a site collection.
type Entity interface {
	EntityID() string
}

// NewID returns a fresh opaque identifier for content records.
func NewID() string {
	return uuid.NewString()
}
