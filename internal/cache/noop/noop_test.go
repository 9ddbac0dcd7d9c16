package noop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoOpStore(t *testing.T) {
	store := NewNoOpStore()

	store.Set("key", []byte("value"), []string{"tag"}, 600)

	entry, found := store.Get("key")
	assert.Nil(t, entry)
	assert.False(t, found)

	// These must not panic.
	store.InvalidateTags([]string{"tag"})
	store.Delete("key")
}
