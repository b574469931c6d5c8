/*
Package cords implements text as a sequence of fragments in an augmented
red-black tree.

Every fragment is keyed by its byte offset within the text. Concatenation and
insertion shift the offsets of a whole subtree with a single deferred
operation, so all editing operations take logarithmic time. The tree's
aggregate counts bytes, runes and newlines.

Cords of one Store share a node arena and may be combined freely. Editing
operations consume their cord arguments: a cord passed to Concat, Insert,
Split or Cut must not be used afterwards, only the cords returned.

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package cords

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'augtree'.
func tracer() tracing.Trace {
	return tracing.Select("augtree")
}

var (
	// ErrIndexOutOfBounds signals a position beyond the end of a cord.
	ErrIndexOutOfBounds = errors.New("cords: index out of bounds")
	// ErrCharBoundary signals a position inside a multi-byte rune.
	ErrCharBoundary = errors.New("cords: position is not on a rune boundary")
	// ErrInvalidUTF8 signals text that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("cords: invalid UTF-8")
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
