package l2

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"view-cache-policy/internal/config"
	"view-cache-policy/internal/interfaces"
	"view-cache-policy/internal/metrics"
	"view-cache-policy/internal/models"
)

// tagIndexPrefix namespaces the Redis sets that map a cache tag to the keys
// stored under it.
const tagIndexPrefix = "tagidx:"

// Ensure KeyDBStore implements interfaces.Store
var _ interfaces.Store = (*KeyDBStore)(nil)

// KeyDBStore implements the L2 store using Redis/KeyDB. Each entry is a JSON
// envelope under its cache key; the tag index lives in one Redis set per tag
// so InvalidateTags can find every key a tag covers.
type KeyDBStore struct {
	client interfaces.KeyDbClient
	config *config.Config
	logger *zap.Logger
}

// NewKeyDBStore creates a new KeyDBStore instance with the provided client
func NewKeyDBStore(cfg *config.Config, client interfaces.KeyDbClient, logger *zap.Logger) *KeyDBStore {
	return &KeyDBStore{
		client: client,
		config: cfg,
		logger: logger,
	}
}

// Get retrieves an entry, enforcing expiry
func (ks *KeyDBStore) Get(key string) (*models.CacheEntry, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), ks.config.GetReadTimeout())
	defer cancel()

	data, err := ks.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var entry models.CacheEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		ks.logger.Error("Failed to unmarshal L2 cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError("l2", "decode")
		ks.client.Del(context.Background(), key)
		return nil, false
	}

	if entry.IsExpired(time.Now()) {
		ks.client.Del(context.Background(), key)
		return nil, false
	}

	return &entry, true
}

// Set stores an entry and registers it in the tag index sets. Permanent
// entries get no Redis expiry; finite entries expire server-side as well so
// an unread entry does not linger.
func (ks *KeyDBStore) Set(key string, val []byte, tags []string, maxAge int64) {
	if maxAge == 0 {
		return
	}

	now := time.Now().Unix()
	entry := models.CacheEntry{
		Data:      val,
		Tags:      tags,
		CreatedAt: now,
	}

	var expiration time.Duration
	if maxAge > 0 {
		entry.ExpiresAt = now + maxAge
		expiration = time.Duration(maxAge) * time.Second
	}

	data, err := json.Marshal(entry)
	if err != nil {
		ks.logger.Error("Failed to marshal cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError("l2", "encode")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), ks.config.GetWriteTimeout())
	defer cancel()

	if err := ks.client.Set(ctx, key, data, expiration).Err(); err != nil {
		ks.logger.Error("Failed to set L2 cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError("l2", "upstream")
		return
	}

	for _, tag := range tags {
		if err := ks.client.SAdd(ctx, tagIndexPrefix+tag, key).Err(); err != nil {
			ks.logger.Warn("Failed to index L2 cache entry by tag",
				zap.String("key", key), zap.String("tag", tag), zap.Error(err))
			metrics.RecordCacheError("l2", "upstream")
		}
	}
}

// InvalidateTags removes every entry registered under any of the tags
func (ks *KeyDBStore) InvalidateTags(tags []string) {
	ctx, cancel := context.WithTimeout(context.Background(), ks.config.GetWriteTimeout())
	defer cancel()

	for _, tag := range tags {
		indexKey := tagIndexPrefix + tag

		keys, err := ks.client.SMembers(ctx, indexKey).Result()
		if err != nil {
			ks.logger.Error("Failed to read tag index", zap.String("tag", tag), zap.Error(err))
			metrics.RecordCacheError("l2", "upstream")
			continue
		}

		if len(keys) > 0 {
			if err := ks.client.Del(ctx, keys...).Err(); err != nil {
				ks.logger.Error("Failed to delete entries for tag", zap.String("tag", tag), zap.Error(err))
				metrics.RecordCacheError("l2", "upstream")
			}
		}

		if err := ks.client.Del(ctx, indexKey).Err(); err != nil {
			ks.logger.Warn("Failed to delete tag index", zap.String("tag", tag), zap.Error(err))
		}
	}
}

// Delete removes a single entry
func (ks *KeyDBStore) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), ks.config.GetWriteTimeout())
	defer cancel()

	if err := ks.client.Del(ctx, key).Err(); err != nil {
		ks.logger.Error("Failed to delete L2 cache entry", zap.String("key", key), zap.Error(err))
	}
}

// Close closes the underlying client
func (ks *KeyDBStore) Close() error {
	return ks.client.Close()
}
