package agg

// AddEach adds a delta to every value of a subtree, keeping a Stats
// aggregate correct.
type AddEach[K any, V Number] struct{}

func (AddEach[K, V]) Identity() V           { return 0 }
func (AddEach[K, V]) IsIdentity(d V) bool   { return d == 0 }
func (AddEach[K, V]) Compose(p, next V) V   { return p + next }
func (AddEach[K, V]) Apply(d V, _ *K, v *V) { *v += d }

func (AddEach[K, V]) ApplyAggregate(d V, a Stats[V], size int) Stats[V] {
	if a.Count == 0 {
		return a
	}
	a.Sum += d * V(a.Count)
	a.Min += d
	a.Max += d
	return a
}

// AddEachSum adds a delta to every value of a subtree, keeping a Sum
// aggregate correct.
type AddEachSum[K any, V Number] struct{}

func (AddEachSum[K, V]) Identity() V           { return 0 }
func (AddEachSum[K, V]) IsIdentity(d V) bool   { return d == 0 }
func (AddEachSum[K, V]) Compose(p, next V) V   { return p + next }
func (AddEachSum[K, V]) Apply(d V, _ *K, v *V) { *v += d }

func (AddEachSum[K, V]) ApplyAggregate(d V, sum V, size int) V {
	return sum + d*V(size)
}

// AddEachKey adds a delta to every key of a subtree, keeping a SumKeys
// aggregate correct. Shifting all keys of a tree by the same amount keeps
// them in order; shifting an inner subtree only is safe as long as its keys
// stay within the bounds of its neighbors.
type AddEachKey[K Number, V any] struct{}

func (AddEachKey[K, V]) Identity() K           { return 0 }
func (AddEachKey[K, V]) IsIdentity(d K) bool   { return d == 0 }
func (AddEachKey[K, V]) Compose(p, next K) K   { return p + next }
func (AddEachKey[K, V]) Apply(d K, k *K, _ *V) { *k += d }

func (AddEachKey[K, V]) ApplyAggregate(d K, sum K, size int) K {
	return sum + d*K(size)
}

// Assignment is the operation of AssignEach. The zero value assigns nothing.
type Assignment[V any] struct {
	Value V
	Set   bool
}

// Assign returns an assignment of v.
func Assign[V any](v V) Assignment[V] {
	return Assignment[V]{Value: v, Set: true}
}

// AssignEach overwrites every value of a subtree, keeping a Sum aggregate
// correct. A later assignment replaces an earlier one.
type AssignEach[K any, V Number] struct{}

func (AssignEach[K, V]) Identity() Assignment[V]         { return Assignment[V]{} }
func (AssignEach[K, V]) IsIdentity(d Assignment[V]) bool { return !d.Set }

func (AssignEach[K, V]) Compose(p, next Assignment[V]) Assignment[V] {
	if next.Set {
		return next
	}
	return p
}

func (AssignEach[K, V]) Apply(d Assignment[V], _ *K, v *V) {
	if d.Set {
		*v = d.Value
	}
}

func (AssignEach[K, V]) ApplyAggregate(d Assignment[V], sum V, size int) V {
	if !d.Set {
		return sum
	}
	return d.Value * V(size)
}
