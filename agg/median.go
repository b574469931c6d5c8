package agg

import "github.com/npillmayer/augtree"

// Median returns the median of the keys of a tree, using order statistics.
// For an even number of keys it is the mean of the two middle keys. The
// result is invalid for an empty tree.
func Median[K Number, V, A, D any](t *augtree.Tree[K, V, A, D], root *augtree.Ref) Bound[float64] {
	n := t.Size(*root)
	if n == 0 {
		return Bound[float64]{}
	}
	hi := float64(t.Key(t.At(root, n/2)))
	if n%2 == 1 {
		return Bound[float64]{Value: hi, Valid: true}
	}
	lo := float64(t.Key(t.At(root, n/2-1)))
	tracer().Debugf("median of %d keys between %v and %v", n, lo, hi)
	return Bound[float64]{Value: (lo + hi) / 2, Valid: true}
}
