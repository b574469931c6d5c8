package augtree

// Aggregator defines how subtree aggregates are computed.
//
// The aggregate of a node is
//
//	Add(Add(left, Of(key, value)), right)
//
// where absent children contribute Zero(). Add must be associative and Zero
// must be its neutral element:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Add need not be commutative; the left operand always stems from keys
// ordered before the right operand.
//
// Several aggregates are combined by tuple-like aggregators (see package agg),
// clients then project out the component they need.
type Aggregator[K, V, A any] interface {
	Zero() A
	Of(key K, value V) A
	Add(left, right A) A
}

// Empty is the aggregate and deferred-operation type of trees which do not
// need one.
type Empty = struct{}

// NoAggregate is an Aggregator maintaining nothing.
type NoAggregate[K, V any] struct{}

func (NoAggregate[K, V]) Zero() Empty          { return Empty{} }
func (NoAggregate[K, V]) Of(K, V) Empty        { return Empty{} }
func (NoAggregate[K, V]) Add(_, _ Empty) Empty { return Empty{} }

// update recomputes size and aggregate of x from its own payload and its
// children. Pending operations of x must have been applied.
func (s *store[K, V, A, D]) update(x Ref) {
	n := &s.nodes[x]
	l, r := &s.nodes[n.l], &s.nodes[n.r]
	n.size = 1 + l.size + r.size
	n.agg = s.agg.Add(s.agg.Add(l.agg, s.agg.Of(n.key, n.value)), r.agg)
}

// updateToRoot recomputes sizes and aggregates on the path from x to the root.
func (s *store[K, V, A, D]) updateToRoot(x Ref) {
	for ; x != Nil; x = s.nodes[x].p {
		s.update(x)
	}
}
