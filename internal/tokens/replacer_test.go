package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapReplacer_Transform(t *testing.T) {
	replacer := NewMapReplacer(map[string]string{
		"view:args": "42",
		"node:nid":  "7",
	})

	testCases := []struct {
		name     string
		tag      string
		expected string
	}{
		{
			name:     "single token",
			tag:      "vact:node_list:[view:args]",
			expected: "vact:node_list:42",
		},
		{
			name:     "multiple tokens",
			tag:      "node:[node:nid]:args:[view:args]",
			expected: "node:7:args:42",
		},
		{
			name:     "no tokens",
			tag:      "node_list",
			expected: "node_list",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := replacer.Transform(tc.tag)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestMapReplacer_UnknownToken(t *testing.T) {
	replacer := NewMapReplacer(map[string]string{"view:args": "42"})

	_, err := replacer.Transform("node:[node:nid]")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "node:nid")
}

func TestMapReplacer_NilValues(t *testing.T) {
	replacer := NewMapReplacer(nil)

	result, err := replacer.Transform("node_list")
	require.NoError(t, err)
	assert.Equal(t, "node_list", result)

	_, err = replacer.Transform("node:[id]")
	assert.Error(t, err)
}
