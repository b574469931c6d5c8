package augtree

// Capabilities tells which mutating operations a strategy supports. Calling
// an unsupported operation on a Tree is a programming error and panics.
type Capabilities struct {
	Insert       bool // Insert, InsertNode
	Remove       bool // Remove by key
	RemoveByNode bool // Detach, RemoveNode, RemoveAt
	Join         bool
	Join3        bool
	Split        bool // Split, SplitAt, Segment
	InsertAt     bool // insertion at a position
	Union        bool
}

var fullCapabilities = Capabilities{
	Insert: true, Remove: true, RemoveByNode: true,
	Join: true, Join3: true, Split: true, InsertAt: true, Union: true,
}

// strategy is the balancing algorithm behind a Tree. Subtree arguments are
// roots (parent link Nil); m arguments of join3 and insert are detached
// singletons without pending operations. Every operation returns the new
// root(s).
type strategy[K any] interface {
	kind() Kind
	capabilities() Capabilities
	// access is called with the last node an access visited. It returns the
	// new root of the tree.
	access(root, x Ref) Ref
	build(nodes []Ref) Ref
	insert(root, x Ref) Ref
	removeNode(x Ref) Ref
	join(l, r Ref) Ref
	join3(l, m, r Ref) Ref
	split(root Ref, key K) (Ref, Ref)
	splitAt(root Ref, i int) (Ref, Ref)
	union(a, b Ref) Ref
	check(root Ref) error
}

func newStrategy[K, V, A, D any](s *store[K, V, A, D], kind Kind) strategy[K] {
	switch kind {
	case RedBlack:
		return &redBlack[K, V, A, D]{store: s}
	case Splay:
		return &splay[K, V, A, D]{store: s}
	case Treap:
		return &treap[K, V, A, D]{store: s}
	case Scapegoat:
		return &scapegoat[K, V, A, D]{store: s}
	case Static:
		return &static[K, V, A, D]{store: s}
	}
	panic("augtree: unknown strategy")
}

// unsupported fills in operations a strategy does not offer. The façade
// checks capabilities first, so these are never reached from the public API.
type unsupported[K any] struct{}

func (unsupported[K]) insert(Ref, Ref) Ref         { panic("augtree: insert not supported") }
func (unsupported[K]) removeNode(Ref) Ref          { panic("augtree: remove not supported") }
func (unsupported[K]) join(Ref, Ref) Ref           { panic("augtree: join not supported") }
func (unsupported[K]) join3(Ref, Ref, Ref) Ref     { panic("augtree: join3 not supported") }
func (unsupported[K]) split(Ref, K) (Ref, Ref)     { panic("augtree: split not supported") }
func (unsupported[K]) splitAt(Ref, int) (Ref, Ref) { panic("augtree: split not supported") }
func (unsupported[K]) union(Ref, Ref) Ref          { panic("augtree: union not supported") }
func (unsupported[K]) access(root, _ Ref) Ref      { return root }

// --- join-based algorithms ---------------------------------------------------
//
// The following operations are expressed in terms of a join3 primitive and
// are shared by all strategies which do not bring a specialized version.

type join3Func func(l, m, r Ref) Ref

// expose applies the pending operation of root and cuts it into its two
// subtrees and the then detached root node.
func (s *store[K, V, A, D]) expose(root Ref) (l, m, r Ref) {
	s.applyDeferred(root)
	l, r = s.orphan(s.nodes[root].l), s.orphan(s.nodes[root].r)
	s.reset(root)
	return l, root, r
}

// splitByKey puts keys < key into the left result.
func (s *store[K, V, A, D]) splitByKey(join3 join3Func, root Ref, key K) (Ref, Ref) {
	if root == Nil {
		return Nil, Nil
	}
	l, m, r := s.expose(root)
	if s.cmp(s.nodes[m].key, key) < 0 {
		rl, rr := s.splitByKey(join3, r, key)
		return join3(l, m, rl), rr
	}
	ll, lr := s.splitByKey(join3, l, key)
	return ll, join3(lr, m, r)
}

// splitByIndex puts the first i nodes into the left result.
func (s *store[K, V, A, D]) splitByIndex(join3 join3Func, root Ref, i int) (Ref, Ref) {
	if root == Nil {
		return Nil, Nil
	}
	ls := s.nodes[s.nodes[root].l].size
	l, m, r := s.expose(root)
	if ls < i {
		rl, rr := s.splitByIndex(join3, r, i-ls-1)
		return join3(l, m, rl), rr
	}
	ll, lr := s.splitByIndex(join3, l, i)
	return ll, join3(lr, m, r)
}

// joinByRemoval joins l and r, using the last node of l as the middle node
// of join3.
func (s *store[K, V, A, D]) joinByRemoval(join3 join3Func, remove func(Ref) Ref, l, r Ref) Ref {
	if l == Nil {
		return r
	}
	if r == Nil {
		return l
	}
	m := s.rightmost(l)
	l = remove(m)
	return join3(l, m, r)
}

// unionBySplit merges b into a, splitting b at the root keys of a.
func (s *store[K, V, A, D]) unionBySplit(join3 join3Func, split func(Ref, K) (Ref, Ref), a, b Ref) Ref {
	if a == Nil {
		return b
	}
	if b == Nil {
		return a
	}
	l, m, r := s.expose(a)
	bl, br := split(b, s.nodes[m].key)
	l = s.unionBySplit(join3, split, l, bl)
	r = s.unionBySplit(join3, split, r, br)
	return join3(l, m, r)
}
