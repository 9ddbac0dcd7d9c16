package interfaces

//go:generate mockgen -package=mock -source=keybuilder.go -destination=mock/keybuilder.go

// KeyBuilder canonizes a view execution into a deterministic cache key. The
// descriptor's contexts are part of the key so distinct context values yield
// distinct entries.
type KeyBuilder interface {
	Build(view, display string, contexts []string) (string, error)
}
