package segtree

import (
	"fmt"
)

// QueryTree is a segment tree supporting point updates and range queries.
//
// Every inner node holds the fold of its subtree under the configured
// Operation. Updates re-fold the path from a leaf to the root; queries
// combine at most O(log n) stored folds.
type QueryTree[V any] struct {
	cfg    Config[V]
	slots  []V // 2*leaves-1 slots, leaves start at leaves-1
	n      int // number of items
	leaves int // number of leaves, a power of 2
}

// NewQueryTree builds a tree over items in O(n). items is copied.
func NewQueryTree[V any](items []V, cfg Config[V]) (*QueryTree[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &QueryTree[V]{
		cfg:    cfg,
		n:      len(items),
		leaves: leafCount(len(items)),
	}
	dflt := cfg.Operation.Default()
	t.slots = make([]V, 2*t.leaves-1)
	for i := range t.slots {
		t.slots[i] = dflt
	}
	copy(t.slots[t.firstLeaf():], items)
	for id := t.firstLeaf() - 1; id >= 0; id-- {
		t.refold(id)
	}
	T().Debugf("query tree: built over %d items, %d leaves", t.n, t.leaves)
	return t, nil
}

// Config returns the tree configuration.
func (t *QueryTree[V]) Config() Config[V] {
	return t.cfg
}

// Len returns the number of items.
func (t *QueryTree[V]) Len() int {
	return t.n
}

// Leaves returns the number of leaves, including padding.
func (t *QueryTree[V]) Leaves() int {
	return t.leaves
}

func (t *QueryTree[V]) firstLeaf() int {
	return t.leaves - 1
}

func (t *QueryTree[V]) refold(id int) {
	t.slots[id] = t.cfg.Operation.Combine(t.slots[2*id+1], t.slots[2*id+2])
}

// Item returns the item at index.
func (t *QueryTree[V]) Item(index int) (V, error) {
	if index < 0 || index >= t.n {
		var zero V
		return zero, fmt.Errorf("%w: item %d of %d", ErrIndexOutOfRange, index, t.n)
	}
	return t.slots[t.firstLeaf()+index], nil
}

// Items returns a copy of all items, in order.
func (t *QueryTree[V]) Items() []V {
	items := make([]V, t.n)
	copy(items, t.slots[t.firstLeaf():t.firstLeaf()+t.n])
	return items
}

// Update replaces the item at index and re-folds all its ancestors.
func (t *QueryTree[V]) Update(index int, value V) error {
	if index < 0 || index >= t.n {
		T().Debugf("query tree: rejecting update of item %d of %d", index, t.n)
		return fmt.Errorf("%w: item %d of %d", ErrIndexOutOfRange, index, t.n)
	}
	id := t.firstLeaf() + index
	t.slots[id] = value
	for id = ParentID(id); id >= 0; id = ParentID(id) {
		t.refold(id)
	}
	return nil
}

// Query returns the fold of items [left, right] in left-to-right order.
// It requires 0 ≤ left ≤ right < Len().
func (t *QueryTree[V]) Query(left, right int) (V, error) {
	var zero V
	q, err := NewSegment(left, right)
	if err != nil {
		return zero, err
	}
	if right >= t.n {
		T().Debugf("query tree: rejecting query %s over %d items", q, t.n)
		return zero, fmt.Errorf("%w: %s exceeds %d items", ErrInvalidRange, q, t.n)
	}
	split := t.splitPoint(q)
	if split.IsLeaf() || split.Segment.Equals(q) {
		return t.slots[split.ID], nil
	}
	l, r, _ := split.Children()
	op := t.cfg.Operation
	return op.Combine(t.foldSuffix(q, l), t.foldPrefix(q, r)), nil
}

// splitPoint returns the deepest node containing q for which no child
// contains q.
func (t *QueryTree[V]) splitPoint(q Segment) Node {
	node := Root(t.leaves)
	for {
		left, right, ok := node.Children()
		switch {
		case !ok:
			return node
		case q.ContainedBy(left.Segment):
			node = left
		case q.ContainedBy(right.Segment):
			node = right
		default:
			return node
		}
	}
}

// foldSuffix folds the part of q inside the left subtree of the split point.
// Within that subtree q always reaches the right border, so the right child
// is visited first and the left child only if q reaches into it.
func (t *QueryTree[V]) foldSuffix(q Segment, node Node) V {
	if node.Segment.ContainedBy(q) {
		return t.slots[node.ID]
	}
	left, right, _ := node.Children()
	rval := t.foldSuffix(q, right)
	lval := t.cfg.Operation.Default()
	if left.Segment.Intersects(q) {
		lval = t.foldSuffix(q, left)
	}
	return t.cfg.Operation.Combine(lval, rval)
}

// foldPrefix is the mirror of foldSuffix for the right subtree of the split
// point.
func (t *QueryTree[V]) foldPrefix(q Segment, node Node) V {
	if node.Segment.ContainedBy(q) {
		return t.slots[node.ID]
	}
	left, right, _ := node.Children()
	lval := t.foldPrefix(q, left)
	rval := t.cfg.Operation.Default()
	if right.Segment.Intersects(q) {
		rval = t.foldPrefix(q, right)
	}
	return t.cfg.Operation.Combine(lval, rval)
}

// --- Layout ----------------------------------------------------------------

// Label returns the stored fold of node id, formatted with %v.
func (t *QueryTree[V]) Label(id int) string {
	return fmt.Sprintf("%v", t.slots[id])
}

// Padding reports whether node id covers padding leaves only.
func (t *QueryTree[V]) Padding(id int) bool {
	return nodeAt(t.leaves, id).Segment.left >= t.n
}
