package augtree

// Deferred defines a lazily applied subtree operation (e.g., "add a delta to
// every value below here").
//
// An operation d attached to a node is handled in two steps:
//
//   - at attach time, ApplyAggregate updates the node's aggregate in O(1),
//     using d and the number of nodes in the subtree;
//   - later, right before the node's children are read or restructured, Apply
//     updates the node's own key and value, and d is attached to both children.
//
// Compose accumulates a new operation onto a pending one, i.e., applying
// Compose(pending, next) must be equivalent to applying pending, then next.
// Identity is the neutral operation and IsIdentity must recognize it.
//
// An operation which changes keys must preserve their order.
type Deferred[K, V, A, D any] interface {
	Identity() D
	IsIdentity(d D) bool
	Compose(pending, next D) D
	Apply(d D, key *K, value *V)
	ApplyAggregate(d D, agg A, size int) A
}

// NoDeferred is a Deferred for trees without lazy operations.
type NoDeferred[K, V, A any] struct{}

func (NoDeferred[K, V, A]) Identity() Empty                      { return Empty{} }
func (NoDeferred[K, V, A]) IsIdentity(Empty) bool                { return true }
func (NoDeferred[K, V, A]) Compose(_, _ Empty) Empty             { return Empty{} }
func (NoDeferred[K, V, A]) Apply(Empty, *K, *V)                  {}
func (NoDeferred[K, V, A]) ApplyAggregate(_ Empty, a A, _ int) A { return a }

// addDeferred attaches d to the subtree rooted at x.
func (s *store[K, V, A, D]) addDeferred(x Ref, d D) {
	n := &s.nodes[x]
	n.agg = s.def.ApplyAggregate(d, n.agg, n.size)
	n.pending = s.def.Compose(n.pending, d)
}

// applyDeferred pushes the pending operation of x down one level. It has to
// be called before the children of x are read or restructured.
func (s *store[K, V, A, D]) applyDeferred(x Ref) {
	n := &s.nodes[x]
	if x == Nil || s.def.IsIdentity(n.pending) {
		return
	}
	d := n.pending
	n.pending = s.def.Identity()
	s.def.Apply(d, &n.key, &n.value)
	if n.l != Nil {
		s.addDeferred(n.l, d)
	}
	if n.r != Nil {
		s.addDeferred(n.r, d)
	}
}

// applyRootToNode pushes pending operations down the path from the root to x,
// including x itself.
func (s *store[K, V, A, D]) applyRootToNode(x Ref) {
	path := s.scratch[:0]
	for ; x != Nil; x = s.nodes[x].p {
		path = append(path, x)
	}
	for i := len(path) - 1; i >= 0; i-- {
		s.applyDeferred(path[i])
	}
	s.scratch = path[:0]
}
