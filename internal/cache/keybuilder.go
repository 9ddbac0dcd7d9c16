package cache

import (
	"crypto/md5"
	"errors"
	"fmt"
	"sort"
	"strings"

	"view-cache-policy/internal/interfaces"
)

// Ensure KeyBuilderImpl implements interfaces.KeyBuilder
var _ interfaces.KeyBuilder = (*KeyBuilderImpl)(nil)

// KeyBuilderImpl implements the KeyBuilder interface
type KeyBuilderImpl struct{}

// NewKeyBuilder creates a new KeyBuilder instance
func NewKeyBuilder() interfaces.KeyBuilder {
	return &KeyBuilderImpl{}
}

// Build creates a cache key for one view execution. Contexts are sorted
// before hashing so the key does not depend on descriptor iteration order.
func (kb *KeyBuilderImpl) Build(view, display string, contexts []string) (string, error) {
	if view == "" {
		return "", errors.New("view cannot be empty")
	}

	if display == "" {
		display = "default"
	}

	var contextHash string
	if len(contexts) > 0 {
		sorted := make([]string, len(contexts))
		copy(sorted, contexts)
		sort.Strings(sorted)

		hasher := md5.New()
		hasher.Write([]byte(strings.Join(sorted, "\x1f")))
		contextHash = fmt.Sprintf("%x", hasher.Sum(nil))
	}

	return fmt.Sprintf("%s:%s:%s", view, display, contextHash), nil
}
