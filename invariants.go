package segtree

import "fmt"

// Check validates that every inner node holds the fold of its children, and
// that padding leaves hold the default value. eq decides equality of values.
//
// Check is meant for tests and debugging; it runs in O(n).
func (t *QueryTree[V]) Check(eq func(a, b V) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if eq == nil {
		return fmt.Errorf("%w: equality is required", ErrInvalidConfig)
	}
	if len(t.slots) != 2*t.leaves-1 || t.n > t.leaves {
		return fmt.Errorf("%w: %d slots for %d items on %d leaves",
			ErrBrokenInvariant, len(t.slots), t.n, t.leaves)
	}
	op := t.cfg.Operation
	for id := t.firstLeaf() + t.n; id < len(t.slots); id++ {
		if !eq(t.slots[id], op.Default()) {
			return fmt.Errorf("%w: padding leaf %d holds %v", ErrBrokenInvariant, id, t.slots[id])
		}
	}
	for id := t.firstLeaf() - 1; id >= 0; id-- {
		folded := op.Combine(t.slots[2*id+1], t.slots[2*id+2])
		if !eq(t.slots[id], folded) {
			return fmt.Errorf("%w: node %d holds %v, children fold to %v",
				ErrBrokenInvariant, id, t.slots[id], folded)
		}
	}
	return nil
}

// Check validates the shape of a dual tree: one pending slot per inner node
// and one value per item.
func (t *DualTree[V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if len(t.pending) != t.leaves-1 || len(t.values) != t.n || t.n > t.leaves {
		return fmt.Errorf("%w: %d pending slots, %d values for %d items on %d leaves",
			ErrBrokenInvariant, len(t.pending), len(t.values), t.n, t.leaves)
	}
	return nil
}
