/*
Package ops provides some pre-manufactured operations and transforms for
segment trees.

Operations are to be used with segtree.QueryTree, transforms with
segtree.DualTree:

	tree, err := segtree.NewQueryTree(items, segtree.Config[int]{Operation: ops.Sum[int]()})
	…
	dual := segtree.NewDualTree(items)
	err = dual.Update(2, 5, ops.Chain(ops.Add(3), ops.Negate[int]()))

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package ops

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
