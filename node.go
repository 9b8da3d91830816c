package segtree

import "math/bits"

// Node identifies a node of a segment tree by its array position, together
// with the segment of items it covers.
//
// Nodes are values derived from a tree's leaf count; they do not carry any
// payload. The root has ID 0, the children of node i are 2i+1 and 2i+2.
type Node struct {
	ID      int
	Segment Segment
}

// Root returns the root node of a tree with the given number of leaves.
func Root(leaves int) Node {
	assert(leaves > 0, "segment tree needs at least one leaf")
	return Node{ID: 0, Segment: Segment{left: 0, right: leaves - 1}}
}

// IsLeaf reports whether n covers a single position.
func (n Node) IsLeaf() bool {
	return n.Segment.left == n.Segment.right
}

// IsRoot reports whether n is the root of its tree.
func (n Node) IsRoot() bool {
	return n.ID == 0
}

// Children returns the left and right child of n. For leaves, ok is false.
func (n Node) Children() (left, right Node, ok bool) {
	if n.IsLeaf() {
		return Node{}, Node{}, false
	}
	l, r := n.Segment.left, n.Segment.right
	mid := l + (r-l)/2
	left = Node{ID: 2*n.ID + 1, Segment: Segment{left: l, right: mid}}
	right = Node{ID: 2*n.ID + 2, Segment: Segment{left: mid + 1, right: r}}
	return left, right, true
}

// Depth returns the distance of n from the root.
func (n Node) Depth() int {
	return bits.Len(uint(n.ID+1)) - 1
}

// ParentID returns the array position of the parent of node id, or -1 for
// the root.
func ParentID(id int) int {
	if id <= 0 {
		return -1
	}
	return (id - 1) / 2
}

// leafCount returns the smallest power of two ≥ n, and at least 1.
func leafCount(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// nodeAt reconstructs the node at array position id for a tree with the given
// number of leaves, descending from the root along the bits of id+1.
func nodeAt(leaves, id int) Node {
	node := Root(leaves)
	path := uint(id + 1)
	for d := bits.Len(path) - 2; d >= 0; d-- {
		left, right, ok := node.Children()
		assert(ok, "node position below leaf level")
		if path&(1<<d) == 0 {
			node = left
		} else {
			node = right
		}
	}
	return node
}
