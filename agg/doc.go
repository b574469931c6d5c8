/*
Package agg provides ready-made aggregators and deferred operations for
package augtree.

Aggregators roll up subtree statistics:

	Sum       sum of values
	SumKeys   sum of keys
	Min, Max  extremal values, as a Bound which is invalid for empty trees
	GCD       greatest common divisor of values
	StatsOf   count, sum, minimum and maximum of values at once
	PairOf    two aggregators side by side

Deferred operations update whole subtrees lazily. Each one names the
aggregate it keeps correct:

	AddEach      adds a delta to every value (Stats aggregate)
	AddEachSum   adds a delta to every value (Sum aggregate)
	AddEachKey   adds a delta to every key (SumKeys aggregate)
	AssignEach   overwrites every value (Sum aggregate)

Tree configurations have to pair an aggregator with a deferred operation
working on the same aggregate type.

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package agg

import (
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/constraints"
)

// tracer traces with key 'augtree'.
func tracer() tracing.Trace {
	return tracing.Select("augtree")
}

// Number is the set of types which aggregators may add up.
type Number interface {
	constraints.Integer | constraints.Float
}
