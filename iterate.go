package augtree

import "iter"

// inorder yields the nodes of a subtree in key order, pushing pending
// operations down on the way.
func (s *store[K, V, A, D]) inorder(root Ref) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		var stack []Ref
		for x := root; x != Nil || len(stack) > 0; {
			for ; x != Nil; x = s.nodes[x].l {
				s.applyDeferred(x)
				stack = append(stack, x)
			}
			x = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(x) {
				return
			}
			x = s.nodes[x].r
		}
	}
}

// preorder yields the nodes of a subtree parents first. It does not touch
// pending operations.
func (s *store[K, V, A, D]) preorder(root Ref) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		if root == Nil {
			return
		}
		stack := []Ref{root}
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(x) {
				return
			}
			if r := s.nodes[x].r; r != Nil {
				stack = append(stack, r)
			}
			if l := s.nodes[x].l; l != Nil {
				stack = append(stack, l)
			}
		}
	}
}

// Nodes iterates over the nodes of a tree in order.
//
// The tree must not be modified during iteration.
func (t *Tree[K, V, A, D]) Nodes(root Ref) iter.Seq[Ref] {
	return t.s.inorder(root)
}

// All iterates over keys and values of a tree in order.
func (t *Tree[K, V, A, D]) All(root Ref) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := range t.s.inorder(root) {
			if !yield(t.s.nodes[x].key, t.s.nodes[x].value) {
				return
			}
		}
	}
}

// Keys returns the keys of a tree in order.
func (t *Tree[K, V, A, D]) Keys(root Ref) []K {
	keys := make([]K, 0, t.s.nodes[root].size)
	for k := range t.All(root) {
		keys = append(keys, k)
	}
	return keys
}
