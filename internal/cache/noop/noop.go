package noop

import (
	"view-cache-policy/internal/interfaces"
	"view-cache-policy/internal/models"
)

// Ensure NoOpStore implements interfaces.Store
var _ interfaces.Store = (*NoOpStore)(nil)

// NoOpStore is a no-operation store implementation for disabled cache levels
type NoOpStore struct{}

// NewNoOpStore creates a new no-operation store instance
func NewNoOpStore() interfaces.Store {
	return &NoOpStore{}
}

// Get always returns a miss
func (n *NoOpStore) Get(key string) (*models.CacheEntry, bool) {
	return nil, false
}

// Set does nothing
func (n *NoOpStore) Set(key string, val []byte, tags []string, maxAge int64) {
	// No-op
}

// InvalidateTags does nothing
func (n *NoOpStore) InvalidateTags(tags []string) {
	// No-op
}

// Delete does nothing
func (n *NoOpStore) Delete(key string) {
	// No-op
}
