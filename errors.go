package segtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrInvalidRange signals a malformed or out-of-bounds segment.
	ErrInvalidRange = errors.New("segtree: invalid range")
	// ErrIndexOutOfRange signals an item index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("segtree: index out of range")
	// ErrBrokenInvariant signals a tree whose inner nodes do not match their children.
	ErrBrokenInvariant = errors.New("segtree: broken invariant")
)
