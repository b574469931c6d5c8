/*
Package textfile loads UTF-8 text files as cords.

Reading runs in a separate goroutine and broadcasts every fragment as soon as
it is read. Load itself is synchronous: it appends fragments to the cord
while the reader keeps going.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'augtree'
func tracer() tracing.Trace {
	return tracing.Select("augtree")
}
