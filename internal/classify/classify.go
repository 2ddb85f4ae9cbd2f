package classify

import "go/types"

// Classifier answers capability questions about resolved types.
type Classifier struct {
	queryable  *types.Named
	enumerable *types.Named
}

// New creates a classifier for the given deferred-query and realized-sequence shapes.
// Instantiated types are accepted; only their generic origin is kept.
func New(queryable, enumerable types.Type) *Classifier {
	return &Classifier{
		queryable:  Origin(queryable),
		enumerable: Origin(enumerable),
	}
}

// IsDeferredQuery reports whether t is an instantiation of the deferred-query shape.
func (c *Classifier) IsDeferredQuery(t types.Type) bool {
	return sameOrigin(t, c.queryable)
}

// IsRealizedSequence reports whether t is an instantiation of the realized-sequence shape.
func (c *Classifier) IsRealizedSequence(t types.Type) bool {
	return sameOrigin(t, c.enumerable)
}

func sameOrigin(t types.Type, shape *types.Named) bool {
	if shape == nil {
		return false
	}

	origin := Origin(t)
	if origin == nil {
		return false
	}

	return origin.Obj() == shape.Obj()
}

// Origin returns the generic definition of a named type.
// Aliases are resolved and a single pointer is stripped.
// Returns nil for nil, unnamed and invalid types.
func Origin(t types.Type) *types.Named {
	if t == nil {
		return nil
	}

	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}

	return named.Origin()
}
