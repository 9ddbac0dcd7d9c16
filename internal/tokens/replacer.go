package tokens

import (
	"fmt"
	"regexp"

	"view-cache-policy/internal/interfaces"
)

// tokenPattern matches bracketed placeholders such as [view:args] inside a
// templated cache tag.
var tokenPattern = regexp.MustCompile(`\[([a-zA-Z0-9_.:-]+)\]`)

// Ensure MapReplacer implements interfaces.TagTransformer
var _ interfaces.TagTransformer = (*MapReplacer)(nil)

// MapReplacer substitutes bracketed tokens in tag strings from a fixed value
// map. The host environment builds one per request with the request's token
// values (current entity id, argument values and so on).
type MapReplacer struct {
	values map[string]string
}

// NewMapReplacer creates a replacer over the given token values
func NewMapReplacer(values map[string]string) *MapReplacer {
	if values == nil {
		values = make(map[string]string)
	}
	return &MapReplacer{values: values}
}

// Transform substitutes every token in tag. A token without a value fails
// the whole transform; the aggregation layer then keeps the original tag.
func (r *MapReplacer) Transform(tag string) (string, error) {
	var missing string

	out := tokenPattern.ReplaceAllStringFunc(tag, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := r.values[name]; ok {
			return value
		}
		if missing == "" {
			missing = name
		}
		return match
	})

	if missing != "" {
		return "", fmt.Errorf("no value for token %q", missing)
	}
	return out, nil
}
