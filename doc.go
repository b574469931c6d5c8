/*
Package augtree offers augmented balanced binary search trees with pluggable
balancing strategies.

# Trees

A single node layout and a single façade (Tree) serve five interchangeable
balancing strategies:

	Strategy   | Balance invariant                         | Join/Split
	-----------+-------------------------------------------+-----------
	RedBlack   | no red-red edge, uniform black-height     | yes
	Splay      | none; every access splays to the root     | yes
	Treap      | priorities form a max-heap                | yes
	Scapegoat  | max(|l|,|r|) ≤ α·|node|, α = 0.7           | no
	Static     | built once with minimum height            | no

Every node carries its subtree size, an aggregate value (a rollup of the
subtree, such as a sum or a minimum) and a pending deferred operation (a lazy
update, such as "add 5 to every value below here"). Clients plug in their own
rollups by implementing Aggregator and their own lazy updates by implementing
Deferred.

Nodes live in an arena owned by the tree and are addressed by Ref handles.
Operations which may change the physical root return the new root. Access
operations take a *Ref, as the splay strategy restructures the tree on every
access.

A tree is not safe for concurrent use. Nodes of one tree must never be mixed
with nodes of another tree.

# Deferred Operations

Pending operations are pushed down one level at a time, immediately before
any code reads or restructures the children of a node. Aggregates stay correct
while an operation is pending: attaching an operation to a node updates the
node's aggregate right away, only the node's own payload and its children
are updated lazily.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package augtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'augtree'
func tracer() tracing.Trace {
	return tracing.Select("augtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
