package ops

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/npillmayer/segtree"
	"golang.org/x/exp/constraints"
)

// Number is the set of numeric item types operations calculate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// op implements segtree.Operation from a function and a default value.
type op[T any] struct {
	name    string
	combine func(T, T) T
	dflt    T
}

func (o op[T]) Default() T {
	return o.dflt
}

func (o op[T]) Combine(left, right T) T {
	return o.combine(left, right)
}

func (o op[T]) String() string {
	return o.name
}

// Sum adds up items. Its default is 0.
func Sum[N Number]() segtree.Operation[N] {
	return op[N]{name: "sum", combine: func(x, y N) N { return x + y }, dflt: 0}
}

// Product multiplies items. Its default is 1.
func Product[N Number]() segtree.Operation[N] {
	return op[N]{name: "product", combine: func(x, y N) N { return x * y }, dflt: 1}
}

// Min selects the smallest item. upper is used as the default and should be
// an upper bound for all items, e.g. math.MaxInt or math.Inf(1).
func Min[N constraints.Ordered](upper N) segtree.Operation[N] {
	return op[N]{name: "min", combine: func(x, y N) N { return min(x, y) }, dflt: upper}
}

// Max selects the largest item. lower is used as the default and should be
// a lower bound for all items.
func Max[N constraints.Ordered](lower N) segtree.Operation[N] {
	return op[N]{name: "max", combine: func(x, y N) N { return max(x, y) }, dflt: lower}
}

// Concat concatenates strings. It is not commutative; queries will
// concatenate items in order. Its default is the empty string.
func Concat() segtree.Operation[string] {
	return op[string]{name: "concat", combine: func(x, y string) string { return x + y }, dflt: ""}
}

// Union unites sets of elements. It never modifies its operands; every
// combination creates a new set. Its default is an empty set.
//
// Operands may be thread-safe or thread-unsafe sets; the result has the
// flavour of the left operand.
func Union[E comparable]() segtree.Operation[mapset.Set[E]] {
	return op[mapset.Set[E]]{
		name:    "union",
		combine: unite[E],
		dflt:    mapset.NewThreadUnsafeSet[E](),
	}
}

func unite[E comparable](x, y mapset.Set[E]) mapset.Set[E] {
	u := x.Clone()
	for e := range y.Iter() {
		u.Add(e)
	}
	return u
}

// Singletons wraps every item into a set of its own, preparing a slice of
// items for a tree using Union.
func Singletons[E comparable](items []E) []mapset.Set[E] {
	sets := make([]mapset.Set[E], len(items))
	for i, item := range items {
		sets[i] = mapset.NewThreadUnsafeSet(item)
	}
	tracer().Debugf("wrapped %d items into singleton sets", len(items))
	return sets
}
