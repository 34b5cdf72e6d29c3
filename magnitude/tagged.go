package magnitude

import "fmt"

// Tagged wraps a non-arithmetic value, such as an opaque handle, in the domain D.
// Tagging never fails.
type Tagged[T comparable, D Domain] struct {
	v T
}

// Tag returns v tagged with the domain D.
func Tag[D Domain, T comparable](v T) Tagged[T, D] { return Tagged[T, D]{v} }

// Get returns the wrapped value.
func (t Tagged[T, D]) Get() T { return t.v }

// Ptr returns a pointer to the wrapped value.
func (t *Tagged[T, D]) Ptr() *T { return &t.v }

// Equal reports whether val is a tagged value of the same type holding the same value.
func (t Tagged[T, D]) Equal(val any) bool {
	switch v := val.(type) {
	case Tagged[T, D]:
		return t.v == v.v
	case *Tagged[T, D]:
		return v != nil && t.v == v.v
	default:
		return false
	}
}

func (t Tagged[T, D]) String() string { return fmt.Sprint(t.v) }
