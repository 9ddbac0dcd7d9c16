package models

import "time"

// MaxAgePermanent is the max-age sentinel for artifacts that never expire
// by elapsed time and only leave the cache through tag invalidation.
const MaxAgePermanent int64 = -1

// PolicyConfig is the normalized cache policy for one view. It is built once
// when the configuration is saved or loaded, is never mutated afterwards, and
// is replaced wholesale on configuration change. Evaluations treat it as
// read-only, which makes concurrent evaluations over the same config safe.
type PolicyConfig struct {
	// CacheTags are tags added unconditionally to every descriptor.
	CacheTags []string
	// CacheTagsExclude are tags removed after aggregation. Exclusion only
	// takes effect when CacheTags is non-empty.
	CacheTagsExclude []string
	// CacheContexts are contexts added unconditionally.
	CacheContexts []string
	// CacheContextsExclude are contexts removed after aggregation.
	CacheContextsExclude []string

	// ResultsLifetime bounds how long raw query results stay valid.
	ResultsLifetime LifetimeSpec
	// OutputLifetime bounds how long rendered output stays valid. It governs
	// the externally advertised max-age and must not exceed ResultsLifetime
	// when both are finite.
	OutputLifetime LifetimeSpec
}

// ContributedMetadata carries the cache tags and contexts one view
// sub-plugin (argument, filter, sort handler, display) depends on. It is
// produced fresh for every evaluation and discarded afterwards.
type ContributedMetadata struct {
	Tags     []string `json:"tags,omitempty"`
	Contexts []string `json:"contexts,omitempty"`
}

// CacheDescriptor is the final cache policy for one evaluation: the tag and
// context sets to attach to the cached artifact, the advertised max-age, and
// the cutoff before which cached raw results are stale. One descriptor is
// computed per view execution and never cached by this subsystem.
type CacheDescriptor struct {
	Tags     []string `json:"tags"`
	Contexts []string `json:"contexts"`
	// MaxAge is the advertised validity in seconds, or MaxAgePermanent.
	MaxAge int64 `json:"max_age"`
	// ResultsExpireAt is the cutoff below which cached results are stale;
	// results created at or after it are still valid. Nil means results
	// never expire by elapsed time.
	ResultsExpireAt *time.Time `json:"results_expire_at,omitempty"`
}
