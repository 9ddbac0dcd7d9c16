package policy

import (
	"time"

	"view-cache-policy/internal/models"
)

// ComputeTags aggregates the final cache tag set for one evaluation.
//
// The contributed layer is the union of every contributor's tags. When the
// policy adds its own tags, the contributed layer, the configured tags and
// the exclusion list are merged (with token substitution applied first), and
// the view's base identity tags are unioned back in afterwards so an
// explicit exclusion can never strip the view's own tags. When the policy
// configures no tags at all, the contributed and base sets are returned
// untouched: exclusions only take effect once at least one tag has been
// explicitly added.
func ComputeTags(cfg *models.PolicyConfig, contributors []models.ContributedMetadata, baseTags []string, transform TagTransform) []string {
	contributed := make([][]string, 0, len(contributors))
	for _, c := range contributors {
		contributed = append(contributed, c.Tags)
	}

	if len(cfg.CacheTags) == 0 {
		contributed = append(contributed, baseTags)
		return Union(contributed...)
	}

	merged := Merge(contributed, cfg.CacheTags, cfg.CacheTagsExclude, transform)
	return Union(merged, baseTags)
}

// ComputeContexts aggregates the final cache context set. Unlike tags,
// exclusions always apply and nothing is re-added afterwards: a base context
// named in the exclusion list stays excluded.
func ComputeContexts(cfg *models.PolicyConfig, baseContexts []string) []string {
	return Merge([][]string{baseContexts}, cfg.CacheContexts, cfg.CacheContextsExclude, nil)
}

// ComputeDescriptor produces the cache descriptor for one evaluation. It is
// a pure function of its arguments: now is threaded in explicitly so
// concurrent evaluations and deterministic tests need no shared clock.
//
// Contributor contexts are folded into the base context layer before the
// merge; the results lifetime yields the staleness cutoff for raw results
// while the output lifetime, the stricter consumer-facing bound, yields the
// advertised max-age.
func ComputeDescriptor(cfg *models.PolicyConfig, now time.Time, contributors []models.ContributedMetadata, baseTags, baseContexts []string, transform TagTransform) models.CacheDescriptor {
	contextSets := make([][]string, 0, len(contributors)+1)
	contextSets = append(contextSets, baseContexts)
	for _, c := range contributors {
		contextSets = append(contextSets, c.Contexts)
	}

	return models.CacheDescriptor{
		Tags:            ComputeTags(cfg, contributors, baseTags, transform),
		Contexts:        ComputeContexts(cfg, Union(contextSets...)),
		MaxAge:          MaxAge(cfg.OutputLifetime),
		ResultsExpireAt: ExpiryCutoff(cfg.ResultsLifetime, now),
	}
}
