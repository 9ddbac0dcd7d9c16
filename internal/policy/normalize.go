package policy

import (
	"fmt"
	"strconv"
	"strings"

	"view-cache-policy/internal/models"
)

// LifetimeCustom is the selector value that switches a lifetime slot from
// the preset catalog to a custom seconds value.
const LifetimeCustom = "custom"

// RawPolicy is the unvalidated configuration as the admin UI submits it:
// multi-line text areas for tags and contexts, plus a selector and an
// optional custom field per lifetime slot.
type RawPolicy struct {
	// CacheTags holds one tag per line; a leading "-" marks an exclusion.
	CacheTags string `yaml:"cache_tags" json:"cache_tags"`
	// CacheContexts holds one context per line, same "-" convention.
	CacheContexts string `yaml:"cache_contexts" json:"cache_contexts"`

	// ResultsLifetime is a preset seconds value or "custom".
	ResultsLifetime       string `yaml:"results_lifetime" json:"results_lifetime"`
	ResultsLifetimeCustom string `yaml:"results_lifetime_custom" json:"results_lifetime_custom"`

	// OutputLifetime is a preset seconds value or "custom".
	OutputLifetime       string `yaml:"output_lifetime" json:"output_lifetime"`
	OutputLifetimeCustom string `yaml:"output_lifetime_custom" json:"output_lifetime_custom"`
}

// ParseEntryList splits a multi-line text area into additive and exclusion
// entries. Lines are trimmed and blank lines dropped; a leading "-" (plus
// any whitespace after it) moves the entry to the exclusion set. The
// partitioning runs once at configuration save time, never per evaluation.
func ParseEntryList(raw string) (include, exclude []string) {
	for _, line := range strings.Split(raw, "\n") {
		entry := strings.TrimSpace(line)
		if entry == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(entry, "-"); ok {
			exclude = append(exclude, strings.TrimSpace(rest))
			continue
		}
		include = append(include, entry)
	}
	return include, exclude
}

// Normalize validates a raw policy and produces the immutable PolicyConfig
// evaluations run against. A non-empty error list means the configuration
// must be rejected; the returned config is only meaningful when the list is
// empty.
func Normalize(raw RawPolicy) (models.PolicyConfig, []models.ValidationError) {
	var errs []models.ValidationError

	var cfg models.PolicyConfig
	cfg.CacheTags, cfg.CacheTagsExclude = ParseEntryList(raw.CacheTags)
	cfg.CacheContexts, cfg.CacheContextsExclude = ParseEntryList(raw.CacheContexts)

	results, resultErrs := normalizeLifetime("results_lifetime", raw.ResultsLifetime, raw.ResultsLifetimeCustom)
	errs = append(errs, resultErrs...)
	output, outputErrs := normalizeLifetime("output_lifetime", raw.OutputLifetime, raw.OutputLifetimeCustom)
	errs = append(errs, outputErrs...)

	cfg.ResultsLifetime = results
	cfg.OutputLifetime = output

	// Rendered output must not outlive the raw results it was derived from.
	// Permanent slots are exempt: -1 is bounded by tag invalidation instead.
	if len(errs) == 0 && results.Seconds >= 0 && output.Seconds >= 0 && output.Seconds > results.Seconds {
		errs = append(errs, models.ValidationError{
			Field: "output_lifetime",
			Message: fmt.Sprintf("output lifetime (%ds) must not exceed results lifetime (%ds)",
				output.Seconds, results.Seconds),
		})
	}

	return cfg, errs
}

func normalizeLifetime(field, selector, custom string) (models.LifetimeSpec, []models.ValidationError) {
	if selector == LifetimeCustom {
		seconds, err := strconv.ParseInt(strings.TrimSpace(custom), 10, 64)
		if err != nil {
			return models.LifetimeSpec{}, []models.ValidationError{{
				Field:   field + "_custom",
				Message: fmt.Sprintf("custom lifetime %q is not a number", custom),
			}}
		}
		if seconds < models.LifetimePermanent {
			return models.LifetimeSpec{}, []models.ValidationError{{
				Field:   field + "_custom",
				Message: fmt.Sprintf("custom lifetime must be -1 or non-negative, got %d", seconds),
			}}
		}
		return models.CustomLifetime(seconds), nil
	}

	// An unset selector falls back to "never cache".
	if selector == "" {
		return models.PresetLifetime(models.LifetimeNone), nil
	}

	seconds, err := strconv.ParseInt(selector, 10, 64)
	if err != nil || !IsPresetLifetime(seconds) {
		return models.LifetimeSpec{}, []models.ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("unknown lifetime preset %q", selector),
		}}
	}
	return models.PresetLifetime(seconds), nil
}
