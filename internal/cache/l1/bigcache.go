package l1

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"

	"view-cache-policy/internal/config"
	"view-cache-policy/internal/interfaces"
	"view-cache-policy/internal/metrics"
	"view-cache-policy/internal/models"
)

// Ensure BigCacheStore implements interfaces.Store
var _ interfaces.Store = (*BigCacheStore)(nil)

// BigCacheStore implements the L1 store using BigCache. BigCache has no
// iteration, so a tag -> keys index is kept alongside it to serve
// InvalidateTags. The index is best effort: keys evicted by BigCache simply
// turn the later invalidation delete into a no-op.
type BigCacheStore struct {
	cache  *bigcache.BigCache
	logger *zap.Logger

	mu       sync.Mutex
	tagIndex map[string]map[string]struct{}

	metricsDone chan struct{}
}

// NewBigCacheStore creates a new BigCacheStore instance
func NewBigCacheStore(bigcacheCfg *config.BigCacheConfig, logger *zap.Logger) (*BigCacheStore, error) {
	cfg := bigcache.DefaultConfig(time.Duration(bigcacheCfg.EvictionMinutes) * time.Minute)
	cfg.HardMaxCacheSize = bigcacheCfg.Size // Size in MB
	cfg.Verbose = false
	cfg.MaxEntrySize = 1024 * 1024 // 1MB max entry size

	cache, err := bigcache.New(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	bc := &BigCacheStore{
		cache:       cache,
		logger:      logger,
		tagIndex:    make(map[string]map[string]struct{}),
		metricsDone: make(chan struct{}),
	}

	go bc.collectMetricsPeriodically()

	return bc, nil
}

// Get retrieves an entry, enforcing expiry
func (bc *BigCacheStore) Get(key string) (*models.CacheEntry, bool) {
	data, err := bc.cache.Get(key)
	if err != nil {
		return nil, false
	}

	var entry models.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		bc.logger.Warn("Failed to unmarshal L1 cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError("l1", "decode")
		bc.Delete(key) // Remove corrupted entry
		return nil, false
	}

	if entry.IsExpired(time.Now()) {
		bc.removeKey(key, entry.Tags)
		return nil, false
	}

	return &entry, true
}

// Set stores an entry under key and indexes it by every tag
func (bc *BigCacheStore) Set(key string, val []byte, tags []string, maxAge int64) {
	if maxAge == 0 {
		return
	}

	now := time.Now().Unix()
	entry := models.CacheEntry{
		Data:      val,
		Tags:      tags,
		CreatedAt: now,
	}
	if maxAge > 0 {
		entry.ExpiresAt = now + maxAge
	}

	data, err := json.Marshal(entry)
	if err != nil {
		bc.logger.Error("Failed to marshal cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError("l1", "encode")
		return
	}

	if err := bc.cache.Set(key, data); err != nil {
		bc.logger.Error("Failed to set cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError("l1", "upstream")
		return
	}

	bc.mu.Lock()
	for _, tag := range tags {
		keys, ok := bc.tagIndex[tag]
		if !ok {
			keys = make(map[string]struct{})
			bc.tagIndex[tag] = keys
		}
		keys[key] = struct{}{}
	}
	bc.mu.Unlock()
}

// InvalidateTags removes every entry indexed under any of the tags
func (bc *BigCacheStore) InvalidateTags(tags []string) {
	bc.mu.Lock()
	stale := make(map[string]struct{})
	for _, tag := range tags {
		for key := range bc.tagIndex[tag] {
			stale[key] = struct{}{}
		}
		delete(bc.tagIndex, tag)
	}
	bc.mu.Unlock()

	for key := range stale {
		_ = bc.cache.Delete(key)
	}
}

// Delete removes a single entry
func (bc *BigCacheStore) Delete(key string) {
	_ = bc.cache.Delete(key)
}

// removeKey deletes an entry and drops it from the tag index
func (bc *BigCacheStore) removeKey(key string, tags []string) {
	_ = bc.cache.Delete(key)

	bc.mu.Lock()
	for _, tag := range tags {
		if keys, ok := bc.tagIndex[tag]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(bc.tagIndex, tag)
			}
		}
	}
	bc.mu.Unlock()
}

// Close stops metrics collection and closes the cache
func (bc *BigCacheStore) Close() error {
	close(bc.metricsDone)
	return bc.cache.Close()
}

// GetStats returns cache statistics for metrics
func (bc *BigCacheStore) GetStats() (capacity, used int64) {
	stats := bc.cache.Stats()
	capacity = int64(bc.cache.Capacity())
	used = int64(stats.Hits + stats.Misses) // Approximate usage based on operations

	return capacity, used
}

// collectMetricsPeriodically updates capacity metrics until Close
func (bc *BigCacheStore) collectMetricsPeriodically() {
	bc.updateMetrics()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			bc.updateMetrics()
		case <-bc.metricsDone:
			return
		}
	}
}

func (bc *BigCacheStore) updateMetrics() {
	capacity, used := bc.GetStats()
	metrics.UpdateL1CacheCapacity(capacity, used)
}
