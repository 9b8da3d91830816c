package segtree

import (
	"fmt"
)

// DualTree is a segment tree supporting range updates and point queries.
//
// An update applies a transform to every item of a range. Nodes fully covered
// by the range absorb the transform: leaves apply it right away, inner nodes
// keep it pending. Pending transforms are pushed down to the children whenever
// a later traversal passes through a node, so transforms reach each item in
// the order they were issued.
type DualTree[V any] struct {
	pending []Transform[V] // one slot per inner node, nil meaning identity
	values  []V            // one slot per item, padding leaves are not stored
	n       int
	leaves  int
}

// NewDualTree builds a tree over items in O(n). items is copied.
func NewDualTree[V any](items []V) *DualTree[V] {
	t := &DualTree[V]{
		n:      len(items),
		leaves: leafCount(len(items)),
	}
	t.pending = make([]Transform[V], t.leaves-1)
	t.values = make([]V, t.n)
	copy(t.values, items)
	T().Debugf("dual tree: built over %d items, %d leaves", t.n, t.leaves)
	return t
}

// Len returns the number of items.
func (t *DualTree[V]) Len() int {
	return t.n
}

// Leaves returns the number of leaves, including padding.
func (t *DualTree[V]) Leaves() int {
	return t.leaves
}

// Update applies f to every item of [left, right]. It requires
// 0 ≤ left ≤ right < Len(). A nil f leaves the tree untouched.
func (t *DualTree[V]) Update(left, right int, f Transform[V]) error {
	q, err := NewSegment(left, right)
	if err != nil {
		return err
	}
	if right >= t.n {
		T().Debugf("dual tree: rejecting update of %s over %d items", q, t.n)
		return fmt.Errorf("%w: %s exceeds %d items", ErrInvalidRange, q, t.n)
	}
	if f == nil {
		return nil
	}
	t.update(Root(t.leaves), q, f)
	return nil
}

func (t *DualTree[V]) update(node Node, q Segment, f Transform[V]) {
	if node.Segment.ContainedBy(q) {
		t.absorb(node, f)
		return
	}
	t.pushDown(node)
	left, right, _ := node.Children()
	if left.Segment.Intersects(q) {
		t.update(left, q, f)
	}
	if right.Segment.Intersects(q) {
		t.update(right, q, f)
	}
}

// Query returns the item at index, after resolving all transforms pending
// on the path from the root to its leaf.
func (t *DualTree[V]) Query(index int) (V, error) {
	if index < 0 || index >= t.n {
		var zero V
		T().Debugf("dual tree: rejecting query of item %d of %d", index, t.n)
		return zero, fmt.Errorf("%w: item %d of %d", ErrIndexOutOfRange, index, t.n)
	}
	node := Root(t.leaves)
	for !node.IsLeaf() {
		t.pushDown(node)
		left, right, _ := node.Children()
		if left.Segment.Contains(index) {
			node = left
		} else {
			node = right
		}
	}
	return t.values[index], nil
}

// Items resolves every pending transform and returns a copy of all items.
func (t *DualTree[V]) Items() []V {
	for id := range t.pending {
		t.pushDown(nodeAt(t.leaves, id))
	}
	items := make([]V, t.n)
	copy(items, t.values)
	return items
}

// Pending returns the number of inner nodes holding an unresolved transform.
func (t *DualTree[V]) Pending() int {
	cnt := 0
	for _, f := range t.pending {
		if f != nil {
			cnt++
		}
	}
	return cnt
}

// absorb applies f to a node covered entirely by an update. f is ordered
// after anything already pending at the node.
func (t *DualTree[V]) absorb(node Node, f Transform[V]) {
	if !node.IsLeaf() {
		t.pending[node.ID] = t.pending[node.ID].Then(f)
		return
	}
	if i := node.Segment.left; i < t.n {
		t.values[i] = f(t.values[i])
	}
}

// pushDown hands the pending transform of an inner node to its children.
// Children hold transforms older than their parent's, so the parent's is
// composed after theirs.
func (t *DualTree[V]) pushDown(node Node) {
	f := t.pending[node.ID]
	if f == nil {
		return
	}
	left, right, _ := node.Children()
	t.absorb(left, f)
	t.absorb(right, f)
	t.pending[node.ID] = nil
}

// --- Layout ----------------------------------------------------------------

// Label returns the value of a leaf, or "f" and "id" for inner nodes with and
// without a pending transform.
func (t *DualTree[V]) Label(id int) string {
	if id < t.leaves-1 {
		if t.pending[id] == nil {
			return "id"
		}
		return "f"
	}
	if i := id - (t.leaves - 1); i < t.n {
		return fmt.Sprintf("%v", t.values[i])
	}
	return ""
}

// Padding reports whether node id covers padding leaves only.
func (t *DualTree[V]) Padding(id int) bool {
	return nodeAt(t.leaves, id).Segment.left >= t.n
}
