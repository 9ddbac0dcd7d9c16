package interfaces

import (
	"view-cache-policy/internal/models"
)

//go:generate mockgen -package=mock -source=policyprovider.go -destination=mock/policyprovider.go

// PolicyProvider resolves the cache policy configured for a view. Providers
// are immutable snapshots of the saved configuration; a reload produces a
// new provider instead of mutating the old one.
type PolicyProvider interface {
	// PolicyFor returns the normalized policy for view, or ok=false when the
	// view has no cache policy configured.
	PolicyFor(view string) (*models.PolicyConfig, bool)
	// Views returns every configured view name.
	Views() []string
}
