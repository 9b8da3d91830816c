package segtree

import "fmt"

// Operation defines how values are folded up a QueryTree.
//
// Combine has to be associative:
//
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
//
// It does not have to be commutative. Default fills padding leaves and stands
// in for branches which do not contribute to a query. It is usually, but not
// necessarily, the neutral element of Combine.
type Operation[V any] interface {
	Default() V
	Combine(left, right V) V
}

// Config configures a QueryTree.
type Config[V any] struct {
	// Operation folds values up the tree.
	Operation Operation[V]
}

// With creates a configuration from a plain binary function and a default value.
func With[V any](combine func(left, right V) V, dflt V) Config[V] {
	if combine == nil {
		return Config[V]{}
	}
	return Config[V]{Operation: funcOperation[V]{combine: combine, dflt: dflt}}
}

type funcOperation[V any] struct {
	combine func(V, V) V
	dflt    V
}

func (op funcOperation[V]) Default() V {
	return op.dflt
}

func (op funcOperation[V]) Combine(left, right V) V {
	return op.combine(left, right)
}

func (cfg Config[V]) validate() error {
	if cfg.Operation == nil {
		return fmt.Errorf("%w: operation is required", ErrInvalidConfig)
	}
	return nil
}

// Transform is a function applied to items of a DualTree. A nil Transform
// is the identity.
type Transform[V any] func(V) V

// Then returns a transform applying f first, then g.
func (f Transform[V]) Then(g Transform[V]) Transform[V] {
	if f == nil {
		return g
	}
	if g == nil {
		return f
	}
	return func(x V) V {
		return g(f(x))
	}
}
