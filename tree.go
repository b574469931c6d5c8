package augtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"slices"
)

// Tree is a node arena together with a balancing strategy. A single Tree may
// hold any number of disjoint trees, each identified by its root handle.
//
// All mutating operations return the new root, as the physical root node may
// change. Access operations take a pointer to the root, because splay trees
// restructure on every access.
//
//	Operation      | RedBlack | Splay | Treap | Scapegoat | Static
//	---------------+----------+-------+-------+-----------+-------
//	Find, At, …    |    ✓     |   ✓   |   ✓   |     ✓     |   ✓
//	Insert, Remove |    ✓     |   ✓   |   ✓   |     ✓     |
//	Join, Split    |    ✓     |   ✓   |   ✓   |           |
//	Union          |    ✓     |   ✓   |   ✓   |           |
//
// A Tree is not safe for concurrent use.
type Tree[K, V, A, D any] struct {
	s    *store[K, V, A, D]
	impl strategy[K]
	caps Capabilities
}

// New creates a tree from a configuration.
func New[K, V, A, D any](cfg Config[K, V, A, D]) (*Tree[K, V, A, D], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	s := newStore(cfg)
	impl := newStrategy(s, cfg.Strategy)
	tracer().Debugf("new %v tree, capacity %d", cfg.Strategy, cfg.Capacity)
	return &Tree[K, V, A, D]{s: s, impl: impl, caps: impl.capabilities()}, nil
}

// NewOrdered creates a tree for naturally ordered keys, without aggregates
// and without deferred operations.
func NewOrdered[K cmp.Ordered, V any](kind Kind, capacity int) *Tree[K, V, Empty, Empty] {
	cfg := OrderedConfig[K, V](kind)
	cfg.Capacity = capacity
	t, err := New(cfg)
	assert(err == nil, "augtree.NewOrdered: invalid strategy")
	return t
}

// Kind returns the balancing strategy of t.
func (t *Tree[K, V, A, D]) Kind() Kind {
	return t.impl.kind()
}

// Capabilities returns the operations the strategy of t supports.
func (t *Tree[K, V, A, D]) Capabilities() Capabilities {
	return t.caps
}

func (t *Tree[K, V, A, D]) require(ok bool, op string) {
	if !ok {
		tracer().Errorf("%s is not supported by %v trees", op, t.impl.kind())
	}
	assert(ok, "augtree: "+op+" not supported by "+t.impl.kind().String()+" trees")
}

// --- Node lifetime ---------------------------------------------------------

// NewNode creates a detached node.
func (t *Tree[K, V, A, D]) NewNode(key K, value V) Ref {
	return t.s.alloc(key, value)
}

// NewNodeWithPriority creates a detached node with an explicit treap
// priority. Other strategies ignore priorities.
func (t *Tree[K, V, A, D]) NewNodeWithPriority(key K, value V, prio uint64) Ref {
	x := t.s.alloc(key, value)
	t.s.nodes[x].prio = prio
	return x
}

// Release returns a detached node to the arena. Its handle becomes invalid.
func (t *Tree[K, V, A, D]) Release(x Ref) {
	n := &t.s.nodes[x]
	assert(n.l == Nil && n.r == Nil && n.p == Nil, "augtree.Release: node is linked")
	t.s.release(x)
}

// ReleaseTree returns all nodes of a tree to the arena.
func (t *Tree[K, V, A, D]) ReleaseTree(root Ref) {
	assert(t.s.nodes[root].p == Nil, "augtree.ReleaseTree: not a root")
	t.s.releaseTree(root)
}

// Used returns the number of live nodes in the arena.
func (t *Tree[K, V, A, D]) Used() int {
	return t.s.used
}

// --- Node data ---------------------------------------------------------------

// Key returns the key of x. Keys changed by deferred operations are
// up to date for nodes returned by access operations; see Refresh.
func (t *Tree[K, V, A, D]) Key(x Ref) K {
	return t.s.nodes[x].key
}

// Value returns the value of x, subject to the same rule as Key.
func (t *Tree[K, V, A, D]) Value(x Ref) V {
	return t.s.nodes[x].value
}

// Agg returns the aggregate over the subtree rooted at x. For a root this is
// the aggregate of the whole tree; the empty tree yields the aggregator's
// zero value.
func (t *Tree[K, V, A, D]) Agg(x Ref) A {
	return t.s.nodes[x].agg
}

// Size returns the number of nodes in the subtree rooted at x.
func (t *Tree[K, V, A, D]) Size(x Ref) int {
	return t.s.nodes[x].size
}

// Refresh pushes pending deferred operations from the root down to x, making
// key and value of x current.
func (t *Tree[K, V, A, D]) Refresh(x Ref) {
	t.s.applyRootToNode(x)
}

// SetValue replaces the value of x and updates aggregates up to the root.
func (t *Tree[K, V, A, D]) SetValue(x Ref, value V) {
	assert(x != Nil, "augtree.SetValue: Nil node")
	t.s.applyRootToNode(x)
	t.s.nodes[x].value = value
	t.s.updateToRoot(x)
}

// AddDeferred attaches the operation d to every node in the subtree rooted at
// x. The subtree aggregate reflects d right away, keys and values are updated
// lazily. x need not be a root; aggregates of its ancestors are updated.
func (t *Tree[K, V, A, D]) AddDeferred(x Ref, d D) {
	if x == Nil {
		return
	}
	p := t.s.nodes[x].p
	t.s.applyRootToNode(p)
	t.s.addDeferred(x, d)
	t.s.updateToRoot(p)
}

// --- Access ------------------------------------------------------------------

func (t *Tree[K, V, A, D]) touch(root *Ref, found, last Ref) Ref {
	*root = t.impl.access(*root, last)
	return found
}

// Find returns a node with key, or Nil.
func (t *Tree[K, V, A, D]) Find(root *Ref, key K) Ref {
	found, last := t.s.descend(*root, key)
	return t.touch(root, found, last)
}

// At returns the node at in-order position i, or Nil if i is out of range.
func (t *Tree[K, V, A, D]) At(root *Ref, i int) Ref {
	found, last := t.s.at(*root, i)
	return t.touch(root, found, last)
}

// LowerBound returns the first node with a key not less than key, or Nil.
func (t *Tree[K, V, A, D]) LowerBound(root *Ref, key K) Ref {
	found, last := t.s.bound(*root, key, false)
	return t.touch(root, found, last)
}

// UpperBound returns the first node with a key greater than key, or Nil.
func (t *Tree[K, V, A, D]) UpperBound(root *Ref, key K) Ref {
	found, last := t.s.bound(*root, key, true)
	return t.touch(root, found, last)
}

// First returns the node with the smallest key, or Nil for an empty tree.
func (t *Tree[K, V, A, D]) First(root *Ref) Ref {
	x := t.s.leftmost(*root)
	return t.touch(root, x, x)
}

// Last returns the node with the largest key, or Nil for an empty tree.
func (t *Tree[K, V, A, D]) Last(root *Ref) Ref {
	x := t.s.rightmost(*root)
	return t.touch(root, x, x)
}

// Rank returns the in-order position of x within its tree.
func (t *Tree[K, V, A, D]) Rank(x Ref) int {
	assert(x != Nil, "augtree.Rank: Nil node")
	return t.s.rank(x)
}

// Height returns the number of levels of the tree.
func (t *Tree[K, V, A, D]) Height(root Ref) int {
	return t.s.height(root)
}

// Stats returns counters of the structural work done so far.
func (t *Tree[K, V, A, D]) Stats() Stats {
	return t.s.stats
}

// --- Mutation ----------------------------------------------------------------

// Build creates a tree from keys in ascending order and their values.
func (t *Tree[K, V, A, D]) Build(keys []K, values []V) Ref {
	assert(len(keys) == len(values), "augtree.Build: keys and values differ in length")
	assert(slices.IsSortedFunc(keys, t.s.cmp), "augtree.Build: keys not sorted")
	nodes := make([]Ref, len(keys))
	for i := range keys {
		nodes[i] = t.s.alloc(keys[i], values[i])
	}
	return t.BuildNodes(nodes)
}

// BuildNodes links detached nodes, ordered by key, into a tree.
func (t *Tree[K, V, A, D]) BuildNodes(nodes []Ref) Ref {
	for i, x := range nodes {
		t.detached(x, "BuildNodes")
		assert(i == 0 || t.s.cmp(t.s.nodes[nodes[i-1]].key, t.s.nodes[x].key) <= 0,
			"augtree.BuildNodes: nodes not sorted")
	}
	tracer().Debugf("build %v tree of %d nodes", t.impl.kind(), len(nodes))
	return t.impl.build(nodes)
}

func (t *Tree[K, V, A, D]) detached(x Ref, op string) {
	n := &t.s.nodes[x]
	assert(x != Nil && n.l == Nil && n.r == Nil && n.p == Nil,
		"augtree."+op+": node is not detached")
	t.s.applyDeferred(x)
}

// Insert creates a node for key and value and inserts it before all nodes
// with an equal key. It returns the new root.
func (t *Tree[K, V, A, D]) Insert(root Ref, key K, value V) Ref {
	return t.InsertNode(root, t.s.alloc(key, value))
}

// InsertNode inserts the detached node x.
func (t *Tree[K, V, A, D]) InsertNode(root, x Ref) Ref {
	t.require(t.caps.Insert, "Insert")
	t.detached(x, "InsertNode")
	return t.impl.insert(root, x)
}

// InsertAt inserts the detached node x at in-order position i, regardless of
// its key. The caller is responsible for keeping keys ordered; trees ordered
// by position alone ignore keys anyway.
func (t *Tree[K, V, A, D]) InsertAt(root Ref, i int, x Ref) Ref {
	t.require(t.caps.InsertAt, "InsertAt")
	t.detached(x, "InsertAt")
	i = min(max(i, 0), t.s.nodes[root].size)
	l, r := t.impl.splitAt(root, i)
	return t.impl.join3(l, x, r)
}

// Remove removes a node with key and returns its value. Nodes are released
// to the arena.
func (t *Tree[K, V, A, D]) Remove(root Ref, key K) (Ref, V, bool) {
	t.require(t.caps.Remove, "Remove")
	x := t.Find(&root, key)
	if x == Nil {
		var zero V
		return root, zero, false
	}
	value := t.s.nodes[x].value
	root = t.impl.removeNode(x)
	t.s.release(x)
	return root, value, true
}

// RemoveAt removes the node at position i and returns its value.
func (t *Tree[K, V, A, D]) RemoveAt(root Ref, i int) (Ref, V, bool) {
	t.require(t.caps.RemoveByNode, "RemoveAt")
	x := t.At(&root, i)
	if x == Nil {
		var zero V
		return root, zero, false
	}
	value := t.s.nodes[x].value
	root = t.impl.removeNode(x)
	t.s.release(x)
	return root, value, true
}

// Detach removes x from its tree and returns the new root. The node stays
// valid as a detached singleton, e.g., for re-insertion.
func (t *Tree[K, V, A, D]) Detach(x Ref) Ref {
	t.require(t.caps.RemoveByNode, "Detach")
	assert(x != Nil, "augtree.Detach: Nil node")
	return t.impl.removeNode(x)
}

// RemoveNode removes x from its tree and releases it.
func (t *Tree[K, V, A, D]) RemoveNode(x Ref) Ref {
	root := t.Detach(x)
	t.s.release(x)
	return root
}

// Join concatenates l and r. All keys of l must not be greater than the keys
// of r.
func (t *Tree[K, V, A, D]) Join(l, r Ref) Ref {
	t.require(t.caps.Join, "Join")
	return t.impl.join(l, r)
}

// Join3 concatenates l, the detached node m, and r.
func (t *Tree[K, V, A, D]) Join3(l, m, r Ref) Ref {
	t.require(t.caps.Join3, "Join3")
	t.detached(m, "Join3")
	return t.impl.join3(l, m, r)
}

// Split partitions a tree into nodes with keys less than key and the rest.
func (t *Tree[K, V, A, D]) Split(root Ref, key K) (Ref, Ref) {
	t.require(t.caps.Split, "Split")
	return t.impl.split(root, key)
}

// SplitAt partitions a tree into its first i nodes and the rest.
func (t *Tree[K, V, A, D]) SplitAt(root Ref, i int) (Ref, Ref) {
	t.require(t.caps.Split, "SplitAt")
	return t.impl.splitAt(root, i)
}

// Union merges two trees. Keys present in both trees are kept twice.
func (t *Tree[K, V, A, D]) Union(a, b Ref) Ref {
	t.require(t.caps.Union, "Union")
	tracer().Debugf("union of %d and %d nodes", t.s.nodes[a].size, t.s.nodes[b].size)
	return t.impl.union(a, b)
}

// Segment returns the aggregate over positions [begin, end) together with
// the new root.
func (t *Tree[K, V, A, D]) Segment(root Ref, begin, end int) (Ref, A) {
	t.require(t.caps.Split && t.caps.Join, "Segment")
	n := t.s.nodes[root].size
	begin, end = max(begin, 0), min(end, n)
	if begin >= end {
		return root, t.s.agg.Zero()
	}
	l, r := t.impl.splitAt(root, end)
	l, m := t.impl.splitAt(l, begin)
	a := t.s.nodes[m].agg
	return t.impl.join(t.impl.join(l, m), r), a
}
