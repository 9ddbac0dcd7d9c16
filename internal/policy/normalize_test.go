package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"view-cache-policy/internal/models"
)

func TestParseEntryList(t *testing.T) {
	testCases := []struct {
		name            string
		raw             string
		expectedInclude []string
		expectedExclude []string
	}{
		{
			name:            "empty input",
			raw:             "",
			expectedInclude: nil,
			expectedExclude: nil,
		},
		{
			name:            "additive entries",
			raw:             "node_list\nconfig:views.view.x\n",
			expectedInclude: []string{"node_list", "config:views.view.x"},
			expectedExclude: nil,
		},
		{
			name:            "exclusion prefix",
			raw:             "vact:node_list:test\n-node_list\n",
			expectedInclude: []string{"vact:node_list:test"},
			expectedExclude: []string{"node_list"},
		},
		{
			name:            "whitespace after prefix stripped",
			raw:             "-  node_list",
			expectedInclude: nil,
			expectedExclude: []string{"node_list"},
		},
		{
			name:            "blank lines and padding dropped",
			raw:             "  node_list  \n\n   \n\tuser:3\n",
			expectedInclude: []string{"node_list", "user:3"},
			expectedExclude: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			include, exclude := ParseEntryList(tc.raw)
			assert.Equal(t, tc.expectedInclude, include)
			assert.Equal(t, tc.expectedExclude, exclude)
		})
	}
}

func TestNormalize_Valid(t *testing.T) {
	raw := RawPolicy{
		CacheTags:       "vact:node_list:test\n-node_list\n",
		CacheContexts:   "url.query_args:test\n-url.query_args:page\n",
		ResultsLifetime: "600",
		OutputLifetime:  "300",
	}

	cfg, errs := Normalize(raw)

	require.Empty(t, errs)
	assert.Equal(t, []string{"vact:node_list:test"}, cfg.CacheTags)
	assert.Equal(t, []string{"node_list"}, cfg.CacheTagsExclude)
	assert.Equal(t, []string{"url.query_args:test"}, cfg.CacheContexts)
	assert.Equal(t, []string{"url.query_args:page"}, cfg.CacheContextsExclude)
	assert.Equal(t, models.PresetLifetime(600), cfg.ResultsLifetime)
	assert.Equal(t, models.PresetLifetime(300), cfg.OutputLifetime)
}

func TestNormalize_CustomLifetime(t *testing.T) {
	raw := RawPolicy{
		ResultsLifetime:       "custom",
		ResultsLifetimeCustom: "1234",
		OutputLifetime:        "custom",
		OutputLifetimeCustom:  "1234",
	}

	cfg, errs := Normalize(raw)

	require.Empty(t, errs)
	assert.Equal(t, models.CustomLifetime(1234), cfg.ResultsLifetime)
	assert.Equal(t, models.CustomLifetime(1234), cfg.OutputLifetime)
}

func TestNormalize_RejectsNonNumericCustomLifetime(t *testing.T) {
	raw := RawPolicy{
		ResultsLifetime:       "custom",
		ResultsLifetimeCustom: "abc",
		OutputLifetime:        "0",
	}

	_, errs := Normalize(raw)

	require.Len(t, errs, 1)
	assert.Equal(t, "results_lifetime_custom", errs[0].Field)
	assert.Contains(t, errs[0].Message, "not a number")
}

func TestNormalize_RejectsNegativeCustomLifetime(t *testing.T) {
	raw := RawPolicy{
		ResultsLifetime:       "custom",
		ResultsLifetimeCustom: "-5",
		OutputLifetime:        "0",
	}

	_, errs := Normalize(raw)

	require.Len(t, errs, 1)
	assert.Equal(t, "results_lifetime_custom", errs[0].Field)
}

func TestNormalize_CustomPermanentAccepted(t *testing.T) {
	raw := RawPolicy{
		ResultsLifetime:       "custom",
		ResultsLifetimeCustom: "-1",
		OutputLifetime:        "custom",
		OutputLifetimeCustom:  "-1",
	}

	cfg, errs := Normalize(raw)

	require.Empty(t, errs)
	assert.True(t, cfg.ResultsLifetime.IsPermanent())
	assert.True(t, cfg.OutputLifetime.IsPermanent())
}

func TestNormalize_RejectsOutputExceedingResults(t *testing.T) {
	// Rendered output must not outlive the raw results it was derived from.
	raw := RawPolicy{
		ResultsLifetime: "300",
		OutputLifetime:  "600",
	}

	_, errs := Normalize(raw)

	require.Len(t, errs, 1)
	assert.Equal(t, "output_lifetime", errs[0].Field)
	assert.Contains(t, errs[0].Message, "must not exceed")
}

func TestNormalize_AcceptsOutputWithinResults(t *testing.T) {
	raw := RawPolicy{
		ResultsLifetime: "600",
		OutputLifetime:  "300",
	}

	_, errs := Normalize(raw)
	assert.Empty(t, errs)
}

func TestNormalize_PermanentResultsExemptFromBound(t *testing.T) {
	// -1 is bounded by tag invalidation, not elapsed time, so any finite
	// output lifetime is acceptable alongside it.
	raw := RawPolicy{
		ResultsLifetime: "-1",
		OutputLifetime:  "604800",
	}

	_, errs := Normalize(raw)
	assert.Empty(t, errs)
}

func TestNormalize_RejectsUnknownPreset(t *testing.T) {
	raw := RawPolicy{
		ResultsLifetime: "1234",
		OutputLifetime:  "0",
	}

	_, errs := Normalize(raw)

	require.Len(t, errs, 1)
	assert.Equal(t, "results_lifetime", errs[0].Field)
	assert.Contains(t, errs[0].Message, "unknown lifetime preset")
}

func TestNormalize_EmptySelectorDefaultsToNeverCache(t *testing.T) {
	cfg, errs := Normalize(RawPolicy{})

	require.Empty(t, errs)
	assert.Equal(t, models.PresetLifetime(0), cfg.ResultsLifetime)
	assert.Equal(t, models.PresetLifetime(0), cfg.OutputLifetime)
}
