package agg

import (
	"fmt"

	"github.com/npillmayer/augtree"
	"golang.org/x/exp/constraints"
)

// Sum adds up values.
type Sum[K any, V Number] struct{}

func (Sum[K, V]) Zero() V       { return 0 }
func (Sum[K, V]) Of(_ K, v V) V { return v }
func (Sum[K, V]) Add(a, b V) V  { return a + b }

// SumKeys adds up keys.
type SumKeys[K Number, V any] struct{}

func (SumKeys[K, V]) Zero() K       { return 0 }
func (SumKeys[K, V]) Of(k K, _ V) K { return k }
func (SumKeys[K, V]) Add(a, b K) K  { return a + b }

// Bound is the result of Min and Max. It is invalid for empty trees.
type Bound[T any] struct {
	Value T
	Valid bool
}

func (b Bound[T]) String() string {
	if !b.Valid {
		return "none"
	}
	return fmt.Sprint(b.Value)
}

// Min tracks the smallest value.
type Min[K any, V constraints.Ordered] struct{}

func (Min[K, V]) Zero() Bound[V]       { return Bound[V]{} }
func (Min[K, V]) Of(_ K, v V) Bound[V] { return Bound[V]{Value: v, Valid: true} }

func (Min[K, V]) Add(a, b Bound[V]) Bound[V] {
	if !a.Valid || (b.Valid && b.Value < a.Value) {
		return b
	}
	return a
}

// Max tracks the largest value.
type Max[K any, V constraints.Ordered] struct{}

func (Max[K, V]) Zero() Bound[V]       { return Bound[V]{} }
func (Max[K, V]) Of(_ K, v V) Bound[V] { return Bound[V]{Value: v, Valid: true} }

func (Max[K, V]) Add(a, b Bound[V]) Bound[V] {
	if !a.Valid || (b.Valid && b.Value > a.Value) {
		return b
	}
	return a
}

// GCD computes the greatest common divisor of values. Zero is neutral, so
// the GCD of an empty tree is 0. The result is never negative.
type GCD[K any, V constraints.Integer] struct{}

func (GCD[K, V]) Zero() V { return 0 }

func (GCD[K, V]) Of(_ K, v V) V {
	if v < 0 {
		return -v
	}
	return v
}

func (GCD[K, V]) Add(a, b V) V {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Stats summarizes values.
type Stats[V Number] struct {
	Count    int
	Sum      V
	Min, Max V // valid if Count > 0
}

// Mean returns the arithmetic mean, or 0 for no values.
func (s Stats[V]) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Count)
}

// StatsOf computes Stats over values.
type StatsOf[K any, V Number] struct{}

func (StatsOf[K, V]) Zero() Stats[V] { return Stats[V]{} }

func (StatsOf[K, V]) Of(_ K, v V) Stats[V] {
	return Stats[V]{Count: 1, Sum: v, Min: v, Max: v}
}

func (StatsOf[K, V]) Add(a, b Stats[V]) Stats[V] {
	switch {
	case a.Count == 0:
		return b
	case b.Count == 0:
		return a
	}
	return Stats[V]{
		Count: a.Count + b.Count,
		Sum:   a.Sum + b.Sum,
		Min:   min(a.Min, b.Min),
		Max:   max(a.Max, b.Max),
	}
}

// Pair is the aggregate of PairOf.
type Pair[A1, A2 any] struct {
	First  A1
	Second A2
}

// PairOf maintains two aggregates side by side.
type PairOf[K, V, A1, A2 any] struct {
	First  augtree.Aggregator[K, V, A1]
	Second augtree.Aggregator[K, V, A2]
}

func (p PairOf[K, V, A1, A2]) Zero() Pair[A1, A2] {
	return Pair[A1, A2]{p.First.Zero(), p.Second.Zero()}
}

func (p PairOf[K, V, A1, A2]) Of(k K, v V) Pair[A1, A2] {
	return Pair[A1, A2]{p.First.Of(k, v), p.Second.Of(k, v)}
}

func (p PairOf[K, V, A1, A2]) Add(a, b Pair[A1, A2]) Pair[A1, A2] {
	return Pair[A1, A2]{p.First.Add(a.First, b.First), p.Second.Add(a.Second, b.Second)}
}
