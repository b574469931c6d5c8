package augtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("augtree: invalid configuration")
	// ErrCorrupted signals a violated tree invariant found by Check.
	ErrCorrupted = errors.New("augtree: tree invariant violated")
)
