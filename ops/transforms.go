package ops

import "github.com/npillmayer/segtree"

// Add returns a transform adding k.
func Add[N Number](k N) segtree.Transform[N] {
	return func(x N) N { return x + k }
}

// Scale returns a transform multiplying by k.
func Scale[N Number](k N) segtree.Transform[N] {
	return func(x N) N { return x * k }
}

// Negate returns a transform flipping the sign.
func Negate[N Number]() segtree.Transform[N] {
	return func(x N) N { return -x }
}

// Append returns a transform appending s to a string.
func Append(s string) segtree.Transform[string] {
	return func(x string) string { return x + s }
}

// Prepend returns a transform prepending s to a string.
func Prepend(s string) segtree.Transform[string] {
	return func(x string) string { return s + x }
}

// Chain composes transforms, applying them left to right. nil transforms
// are skipped; chaining nothing results in nil, i.e. the identity.
func Chain[T any](fs ...segtree.Transform[T]) segtree.Transform[T] {
	var chained segtree.Transform[T]
	for _, f := range fs {
		chained = chained.Then(f)
	}
	return chained
}
