package policy

import "sort"

// TagTransform rewrites one tag string, typically substituting a token such
// as a current-entity identifier into a templated tag. A non-nil error means
// the tag could not be rewritten; Merge then keeps the original string
// instead of aborting the whole computation.
type TagTransform func(tag string) (string, error)

// Merge unions every contributed set with extra, then subtracts exclude.
// When transform is non-nil it is applied element-wise to the contributed
// and extra entries before the union, so exclusion matches the substituted
// form. The result is deduplicated and sorted; callers must not rely on the
// ordering. Merge is idempotent: merging its own output with empty extra and
// exclude sets returns the same set.
func Merge(contributed [][]string, extra, exclude []string, transform TagTransform) []string {
	union := make(map[string]struct{})

	add := func(entry string) {
		if transform != nil {
			if substituted, err := transform(entry); err == nil {
				entry = substituted
			}
		}
		union[entry] = struct{}{}
	}

	for _, set := range contributed {
		for _, entry := range set {
			add(entry)
		}
	}
	for _, entry := range extra {
		add(entry)
	}

	for _, entry := range exclude {
		delete(union, entry)
	}

	out := make([]string, 0, len(union))
	for entry := range union {
		out = append(out, entry)
	}
	sort.Strings(out)
	return out
}

// Union deduplicates the concatenation of the given sets without applying
// any exclusion or transform.
func Union(sets ...[]string) []string {
	return Merge(sets, nil, nil, nil)
}
