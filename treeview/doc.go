/*
Package treeview renders segment trees to a console, level by level.

Every level of a tree is printed as a sequence of cells, one per node,
showing the node's segment and its label. Cells are coloured by node kind
(inner node, leaf, padding) and wrapped to the width of the terminal.
Widths are measured with East Asian Width rules (UAX #11), long cells are
broken at line break opportunities (UAX #14).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package treeview

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
