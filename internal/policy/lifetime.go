package policy

import (
	"sort"
	"time"

	"view-cache-policy/internal/models"
)

// lifetimePresets is the catalog of seconds values offered by the
// configuration UI for the preset lifetime mode. 0 disables caching and -1
// caches until explicit tag invalidation.
var lifetimePresets = map[int64]struct{}{
	models.LifetimePermanent: {},
	models.LifetimeNone:      {},
	60:                       {},
	300:                      {},
	600:                      {},
	900:                      {},
	1800:                     {},
	3600:                     {},
	21600:                    {},
	43200:                    {},
	86400:                    {},
	604800:                   {},
}

// IsPresetLifetime reports whether seconds is a catalog value.
func IsPresetLifetime(seconds int64) bool {
	_, ok := lifetimePresets[seconds]
	return ok
}

// PresetLifetimes returns the catalog values in ascending order.
func PresetLifetimes() []int64 {
	out := make([]int64, 0, len(lifetimePresets))
	for s := range lifetimePresets {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ResolveLifetime returns the effective lifetime in seconds for a spec:
// -1 for permanent, otherwise a value >= 0 meaning "expires after N seconds".
// Custom specs return their stored value verbatim; validation already
// guaranteed it is -1 or non-negative.
func ResolveLifetime(spec models.LifetimeSpec) int64 {
	return spec.Seconds
}

// ExpiryCutoff returns the instant before which cached data is stale: data
// created at or after the cutoff is still valid. Lifetime counts backward
// from now, so a lifetime of N seconds yields now-N, and a lifetime of 0
// yields now itself (nothing is ever a hit). A permanent lifetime returns
// nil: such data never goes stale by elapsed time.
func ExpiryCutoff(spec models.LifetimeSpec, now time.Time) *time.Time {
	lifetime := ResolveLifetime(spec)
	if lifetime < 0 {
		return nil
	}
	cutoff := now.Add(-time.Duration(lifetime) * time.Second)
	return &cutoff
}

// MaxAge translates a lifetime spec into the externally advertised max-age:
// the lifetime seconds when finite, models.MaxAgePermanent otherwise.
func MaxAge(spec models.LifetimeSpec) int64 {
	lifetime := ResolveLifetime(spec)
	if lifetime < 0 {
		return models.MaxAgePermanent
	}
	return lifetime
}
