package models

import "time"

// CacheEntry is the envelope stored for a cached rendered artifact. Tags are
// kept with the payload so any store level can serve invalidation requests.
type CacheEntry struct {
	Data      []byte   `json:"data"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt int64    `json:"created_at"`
	// ExpiresAt is a Unix timestamp, or 0 for entries that never expire by
	// elapsed time (MaxAgePermanent).
	ExpiresAt int64 `json:"expires_at,omitempty"`
}

// IsExpired reports whether the entry has outlived its max-age at the given
// instant. Permanent entries (ExpiresAt == 0) never expire.
func (e *CacheEntry) IsExpired(now time.Time) bool {
	if e.ExpiresAt == 0 {
		return false
	}
	return now.Unix() >= e.ExpiresAt
}
