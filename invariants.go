package augtree

import (
	"fmt"
	"reflect"
	"slices"
)

// Check validates the invariants of the tree rooted at root: parent links,
// subtree sizes, key order, aggregates and the balance rules of the
// strategy. It pushes all pending deferred operations down to the leaves
// first. Aggregates are compared with reflect.DeepEqual.
//
// Check is meant for tests; it takes time linear in the size of the tree.
func (t *Tree[K, V, A, D]) Check(root Ref) error {
	if err := t.s.check(root); err != nil {
		tracer().Debugf("check failed: %v", err)
		return err
	}
	if err := t.impl.check(root); err != nil {
		tracer().Debugf("%v check failed: %v", t.impl.kind(), err)
		return err
	}
	return nil
}

func (s *store[K, V, A, D]) check(root Ref) error {
	if root == Nil {
		return nil
	}
	if p := s.nodes[root].p; p != Nil {
		return fmt.Errorf("%w: root %d has parent %d", ErrCorrupted, root, p)
	}
	var prev Ref
	for x := range s.inorder(root) {
		n := &s.nodes[x]
		for _, c := range [2]Ref{n.l, n.r} {
			if c != Nil && s.nodes[c].p != x {
				return fmt.Errorf("%w: child %d of node %d links to parent %d",
					ErrCorrupted, c, x, s.nodes[c].p)
			}
		}
		if prev != Nil && s.cmp(s.nodes[prev].key, n.key) > 0 {
			return fmt.Errorf("%w: key order broken at node %d", ErrCorrupted, x)
		}
		prev = x
	}
	// sizes and aggregates, children first
	for _, x := range s.postorder(root) {
		n := &s.nodes[x]
		l, r := &s.nodes[n.l], &s.nodes[n.r]
		if n.size != 1+l.size+r.size {
			return fmt.Errorf("%w: size of node %d is %d, expected %d",
				ErrCorrupted, x, n.size, 1+l.size+r.size)
		}
		agg := s.agg.Add(s.agg.Add(l.agg, s.agg.Of(n.key, n.value)), r.agg)
		if !reflect.DeepEqual(agg, n.agg) {
			return fmt.Errorf("%w: aggregate of node %d is %v, expected %v",
				ErrCorrupted, x, n.agg, agg)
		}
	}
	return nil
}

// postorder lists the nodes of a subtree children first.
func (s *store[K, V, A, D]) postorder(root Ref) []Ref {
	out := slices.Collect(s.preorder(root))
	slices.Reverse(out)
	return out
}
