/*
Package metrics provides some pre-manufactured metrics on cords: word spans
and first-fit line wrapping.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'augtree'
func tracer() tracing.Trace {
	return tracing.Select("augtree")
}
