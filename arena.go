package augtree

import (
	"math/rand/v2"
)

// Ref is a handle to a node of a tree. The zero value Nil denotes "no node".
//
// A Ref stays valid until its node is released. Handles are indices into the
// node arena of the tree which issued them.
type Ref uint32

// Nil is the absent node.
const Nil Ref = 0

// node is the atomic unit of all trees. Links are arena indices; the parent
// link is maintained by every strategy.
type node[K, V, A, D any] struct {
	key     K
	value   V
	agg     A
	pending D
	l, r, p Ref
	size    int
	prio    uint64
	black   bool
}

// store is the node arena shared by all strategies. nodes[0] is a sentinel
// with size 0 and a neutral aggregate, so reading the size or aggregate of an
// absent child needs no branch. The sentinel must never be written to.
//
// Released nodes form a free list threaded through their left links.
type store[K, V, A, D any] struct {
	nodes   []node[K, V, A, D]
	free    Ref
	used    int
	cmp     func(K, K) int
	agg     Aggregator[K, V, A]
	def     Deferred[K, V, A, D]
	rnd     *rand.Rand
	prio    func(K) uint64
	alpha   float64
	scratch []Ref
	stats   Stats
}

// Stats counts structural work done by a tree.
type Stats struct {
	Rotations int // single rotations
	Rebuilds  int // scapegoat subtree rebuilds
}

func newStore[K, V, A, D any](cfg Config[K, V, A, D]) *store[K, V, A, D] {
	s := &store[K, V, A, D]{
		nodes: make([]node[K, V, A, D], 1, cfg.Capacity+1),
		cmp:   cfg.Compare,
		agg:   cfg.Aggregator,
		def:   cfg.Deferred,
		rnd:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		prio:  cfg.Priority,
		alpha: cfg.Alpha,
	}
	s.nodes[0].agg = s.agg.Zero()
	s.nodes[0].pending = s.def.Identity()
	s.nodes[0].black = true
	return s
}

// alloc creates a detached node.
func (s *store[K, V, A, D]) alloc(key K, value V) Ref {
	var x Ref
	if s.free != Nil {
		x = s.free
		s.free = s.nodes[x].l
	} else {
		s.nodes = append(s.nodes, node[K, V, A, D]{})
		x = Ref(len(s.nodes) - 1)
	}
	n := &s.nodes[x]
	n.key, n.value = key, value
	n.l, n.r, n.p = Nil, Nil, Nil
	n.pending = s.def.Identity()
	n.black = false
	if s.prio != nil {
		n.prio = s.prio(key)
	} else {
		n.prio = s.rnd.Uint64()
	}
	s.update(x)
	s.used++
	return x
}

// release returns a single node to the free list.
func (s *store[K, V, A, D]) release(x Ref) {
	assert(x != Nil, "augtree: release of Nil")
	s.nodes[x] = node[K, V, A, D]{l: s.free}
	s.free = x
	s.used--
}

// releaseTree returns all nodes of a subtree to the free list.
func (s *store[K, V, A, D]) releaseTree(root Ref) {
	if root == Nil {
		return
	}
	stack := []Ref{root}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l := s.nodes[x].l; l != Nil {
			stack = append(stack, l)
		}
		if r := s.nodes[x].r; r != Nil {
			stack = append(stack, r)
		}
		s.release(x)
	}
}

// reset detaches x from all links and recomputes its aggregate as a
// singleton. Pending operations of x must have been applied.
func (s *store[K, V, A, D]) reset(x Ref) {
	n := &s.nodes[x]
	n.l, n.r, n.p = Nil, Nil, Nil
	s.update(x)
}
