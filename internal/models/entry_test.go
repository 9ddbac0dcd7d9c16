package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheEntry_IsExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		entry    CacheEntry
		expected bool
	}{
		{
			name:     "permanent entry never expires",
			entry:    CacheEntry{CreatedAt: now.Unix() - 1000000, ExpiresAt: 0},
			expected: false,
		},
		{
			name:     "entry expiring in the future",
			entry:    CacheEntry{CreatedAt: now.Unix(), ExpiresAt: now.Unix() + 600},
			expected: false,
		},
		{
			name:     "entry expiring exactly now",
			entry:    CacheEntry{CreatedAt: now.Unix() - 600, ExpiresAt: now.Unix()},
			expected: true,
		},
		{
			name:     "entry expired in the past",
			entry:    CacheEntry{CreatedAt: now.Unix() - 1200, ExpiresAt: now.Unix() - 600},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.entry.IsExpired(now))
		})
	}
}
