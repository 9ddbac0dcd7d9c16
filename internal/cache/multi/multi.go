package multi

import (
	"go.uber.org/zap"

	"view-cache-policy/internal/interfaces"
	"view-cache-policy/internal/models"
)

// Ensure MultiStore implements interfaces.Store
var _ interfaces.Store = (*MultiStore)(nil)

// MultiStore is a composite store layered over multiple store levels. Reads
// try each level in order until one hits; writes and invalidations fan out
// to every level so no level serves an artifact another level has dropped.
type MultiStore struct {
	stores []interfaces.Store
	logger *zap.Logger
}

// NewMultiStore creates a new MultiStore instance with the provided levels
func NewMultiStore(stores []interfaces.Store, logger *zap.Logger) interfaces.Store {
	return &MultiStore{
		stores: stores,
		logger: logger,
	}
}

// Get retrieves the entry from the first level that has the key
func (ms *MultiStore) Get(key string) (*models.CacheEntry, bool) {
	if len(ms.stores) == 0 {
		ms.logger.Warn("No stores available for get operation", zap.String("key", key))
		return nil, false
	}

	for _, store := range ms.stores {
		if entry, found := store.Get(key); found {
			return entry, true
		}
	}
	return nil, false
}

// GetWithLevel retrieves the entry and reports which level served it,
// starting at level 0.
func (ms *MultiStore) GetWithLevel(key string) (*models.CacheEntry, int, bool) {
	for level, store := range ms.stores {
		if entry, found := store.Get(key); found {
			return entry, level, true
		}
	}
	return nil, -1, false
}

// Set stores the entry in every level
func (ms *MultiStore) Set(key string, val []byte, tags []string, maxAge int64) {
	if len(ms.stores) == 0 {
		ms.logger.Warn("No stores available for set operation", zap.String("key", key))
		return
	}

	for _, store := range ms.stores {
		store.Set(key, val, tags, maxAge)
	}
}

// InvalidateTags invalidates the tags in every level
func (ms *MultiStore) InvalidateTags(tags []string) {
	for _, store := range ms.stores {
		store.InvalidateTags(tags)
	}
}

// Delete removes the entry from every level
func (ms *MultiStore) Delete(key string) {
	for _, store := range ms.stores {
		store.Delete(key)
	}
}

// StoreCount returns the number of levels in the multi-store
func (ms *MultiStore) StoreCount() int {
	return len(ms.stores)
}
