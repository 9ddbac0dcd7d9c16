package interfaces

//go:generate mockgen -package=mock -source=tagtransformer.go -destination=mock/tagtransformer.go

// TagTransformer substitutes tokens inside a templated cache tag, e.g. a
// current-entity identifier. A failed substitution returns an error; the
// aggregation layer then keeps the original tag rather than aborting.
type TagTransformer interface {
	Transform(tag string) (string, error)
}
