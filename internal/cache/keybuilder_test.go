package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBuilder_Build(t *testing.T) {
	kb := NewKeyBuilder()

	key, err := kb.Build("frontpage", "page_1", []string{"user", "url.query_args"})

	require.NoError(t, err)
	assert.Contains(t, key, "frontpage:page_1:")
}

func TestKeyBuilder_Deterministic(t *testing.T) {
	kb := NewKeyBuilder()

	key1, err := kb.Build("frontpage", "page_1", []string{"user", "url.query_args"})
	require.NoError(t, err)
	key2, err := kb.Build("frontpage", "page_1", []string{"url.query_args", "user"})
	require.NoError(t, err)

	// Context ordering must not change the key.
	assert.Equal(t, key1, key2)
}

func TestKeyBuilder_DistinctContextsDistinctKeys(t *testing.T) {
	kb := NewKeyBuilder()

	key1, err := kb.Build("frontpage", "page_1", []string{"user"})
	require.NoError(t, err)
	key2, err := kb.Build("frontpage", "page_1", []string{"user.roles"})
	require.NoError(t, err)

	assert.NotEqual(t, key1, key2)
}

func TestKeyBuilder_EmptyViewRejected(t *testing.T) {
	kb := NewKeyBuilder()

	_, err := kb.Build("", "page_1", nil)
	assert.Error(t, err)
}

func TestKeyBuilder_DefaultDisplay(t *testing.T) {
	kb := NewKeyBuilder()

	key, err := kb.Build("frontpage", "", nil)

	require.NoError(t, err)
	assert.Equal(t, "frontpage:default:", key)
}

func TestKeyBuilder_NoContexts(t *testing.T) {
	kb := NewKeyBuilder()

	key, err := kb.Build("frontpage", "page_1", nil)

	require.NoError(t, err)
	assert.Equal(t, "frontpage:page_1:", key)
}
