/*
Package intervalset implements sets of integers stored as disjoint half-open
intervals.

Intervals live in a treap keyed by their end. Inserting an interval merges it
with every interval it overlaps or touches, so a set never holds two adjacent
intervals. Shifting all values of a set is a deferred tree operation and
takes constant time.

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package intervalset

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/augtree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'augtree'.
func tracer() tracing.Trace {
	return tracing.Select("augtree")
}

// Interval is the half-open range [B, E).
type Interval struct {
	B, E int64
}

// Point is the interval holding v only.
func Point(v int64) Interval {
	return Interval{B: v, E: v + 1}
}

// Empty reports whether i holds no values.
func (i Interval) Empty() bool {
	return i.E <= i.B
}

// Len returns the number of values in i.
func (i Interval) Len() int64 {
	if i.Empty() {
		return 0
	}
	return i.E - i.B
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.B, i.E)
}

// coverage counts the values covered by the intervals of a subtree.
type coverage struct{}

func (coverage) Zero() int64                  { return 0 }
func (coverage) Of(_ int64, i Interval) int64 { return i.Len() }
func (coverage) Add(a, b int64) int64         { return a + b }

// shift moves intervals and their keys. Coverage does not change.
type shift struct{}

func (shift) Identity() int64             { return 0 }
func (shift) IsIdentity(d int64) bool     { return d == 0 }
func (shift) Compose(p, next int64) int64 { return p + next }

func (shift) Apply(d int64, end *int64, i *Interval) {
	*end += d
	i.B += d
	i.E += d
}

func (shift) ApplyAggregate(_ int64, a int64, _ int) int64 { return a }

type tree = augtree.Tree[int64, Interval, int64, int64]

// Set is a set of int64 values. The zero value is not usable, sets are
// created with New.
type Set struct {
	tree *tree
	root augtree.Ref
}

// New creates an empty set.
func New() *Set {
	t, err := augtree.New(augtree.Config[int64, Interval, int64, int64]{
		Strategy:   augtree.Treap,
		Compare:    cmp.Compare[int64],
		Aggregator: coverage{},
		Deferred:   shift{},
	})
	if err != nil {
		panic(err) // static configuration
	}
	return &Set{tree: t}
}

// IsEmpty reports whether s holds no values.
func (s *Set) IsEmpty() bool {
	return s.root == augtree.Nil
}

// Size returns the number of values in s.
func (s *Set) Size() int64 {
	return s.tree.Agg(s.root)
}

// Count returns the number of disjoint intervals s consists of.
func (s *Set) Count() int {
	return s.tree.Size(s.root)
}

// Intervals returns the intervals of s in ascending order.
func (s *Set) Intervals() []Interval {
	intervals := make([]Interval, 0, s.Count())
	for _, i := range s.tree.All(s.root) {
		intervals = append(intervals, i)
	}
	return intervals
}

// Contains reports whether v is in s.
func (s *Set) Contains(v int64) bool {
	x := s.tree.UpperBound(&s.root, v)
	return x != augtree.Nil && s.tree.Value(x).B <= v
}

// Add inserts the single value v.
func (s *Set) Add(v int64) {
	s.Insert(Point(v))
}

// Insert adds all values of i.
func (s *Set) Insert(i Interval) {
	if i.Empty() {
		return
	}
	b, e := i.B, i.E
	l, rest := s.tree.Split(s.root, b) // intervals ending before b
	m, r := s.tree.Split(rest, e)      // intervals ending within [b, e)
	if m != augtree.Nil {
		b = min(b, s.tree.Value(s.tree.First(&m)).B)
		s.tree.ReleaseTree(m)
	}
	if r != augtree.Nil {
		if first := s.tree.First(&r); s.tree.Value(first).B <= e {
			e = s.tree.Value(first).E
			r = s.tree.RemoveNode(first)
		}
	}
	s.root = s.tree.Join3(l, s.tree.NewNode(e, Interval{B: b, E: e}), r)
}

// InsertSet adds all values of other.
func (s *Set) InsertSet(other *Set) {
	for _, i := range other.tree.All(other.root) {
		s.Insert(i)
	}
}

// Shift adds d to every value of s.
func (s *Set) Shift(d int64) {
	s.tree.AddDeferred(s.root, d)
}

// Intersect removes all values outside of i.
func (s *Set) Intersect(i Interval) {
	if i.Empty() {
		s.Clear()
		return
	}
	l, rest := s.tree.Split(s.root, i.B+1) // intervals ending at or before i.B
	m, r := s.tree.Split(rest, i.E+1)      // intervals ending within (i.B, i.E]
	s.tree.ReleaseTree(l)
	if m != augtree.Nil {
		first := s.tree.First(&m)
		if v := s.tree.Value(first); v.B < i.B {
			v.B = i.B
			s.tree.SetValue(first, v)
		}
	}
	if r != augtree.Nil {
		if v := s.tree.Value(s.tree.First(&r)); v.B < i.E {
			clipped := Interval{B: max(v.B, i.B), E: i.E}
			m = s.tree.Join3(m, s.tree.NewNode(i.E, clipped), augtree.Nil)
		}
		s.tree.ReleaseTree(r)
	}
	s.root = m
	tracer().Debugf("intersection with %v leaves %d intervals", i, s.Count())
}

// Clear removes all values.
func (s *Set) Clear() {
	s.tree.ReleaseTree(s.root)
	s.root = augtree.Nil
}
