package segtree

import "fmt"

// Segment is a closed interval [left, right] of item positions.
// Segments are immutable; the zero value is the single-position segment [0, 0].
type Segment struct {
	left, right int
}

// NewSegment creates a segment [left, right]. It returns ErrInvalidRange if
// left is negative or left > right.
func NewSegment(left, right int) (Segment, error) {
	if left < 0 || left > right {
		return Segment{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, left, right)
	}
	return Segment{left: left, right: right}, nil
}

// Left returns the first position of the segment.
func (s Segment) Left() int {
	return s.left
}

// Right returns the last position of the segment.
func (s Segment) Right() int {
	return s.right
}

// Len returns the number of positions covered.
func (s Segment) Len() int {
	return s.right - s.left + 1
}

// Contains reports whether left ≤ x ≤ right.
func (s Segment) Contains(x int) bool {
	return s.left <= x && x <= s.right
}

// ContainedBy reports whether s is a subset of other.
func (s Segment) ContainedBy(other Segment) bool {
	return other.left <= s.left && s.right <= other.right
}

// Intersects reports whether s and other share at least one position.
func (s Segment) Intersects(other Segment) bool {
	return max(s.left, other.left) <= min(s.right, other.right)
}

// Equals reports whether s and other have identical bounds.
func (s Segment) Equals(other Segment) bool {
	return s == other
}

func (s Segment) String() string {
	return fmt.Sprintf("[%d, %d]", s.left, s.right)
}
