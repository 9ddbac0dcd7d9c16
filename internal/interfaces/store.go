package interfaces

import (
	"view-cache-policy/internal/models"
)

//go:generate mockgen -package=mock -source=store.go -destination=mock/store.go

// Store is the tag-aware artifact store the policy layer writes rendered
// output into. Implementations own expiry enforcement and tag bookkeeping;
// the policy layer only decides tags and max-age.
type Store interface {
	// Get returns the entry stored under key, or found=false on miss or
	// after expiry.
	Get(key string) (*models.CacheEntry, bool)
	// Set stores val under key, indexed by every tag, expiring after maxAge
	// seconds. maxAge of models.MaxAgePermanent never expires by time.
	Set(key string, val []byte, tags []string, maxAge int64)
	// InvalidateTags removes every entry stored under any of the tags.
	InvalidateTags(tags []string)
	// Delete removes a single entry.
	Delete(key string)
}
