package augtree

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// treap keeps node priorities in max-heap order. With random priorities the
// expected height is logarithmic; priorities derived from keys make the shape
// independent of the insertion history.
type treap[K, V, A, D any] struct {
	*store[K, V, A, D]
}

// StringPriority derives treap priorities from string keys. Trees using it
// have a canonical shape for every set of keys.
func StringPriority(key string) uint64 {
	return xxhash.Sum64([]byte(key))
}

func (t *treap[K, V, A, D]) kind() Kind                 { return Treap }
func (t *treap[K, V, A, D]) capabilities() Capabilities { return fullCapabilities }
func (t *treap[K, V, A, D]) access(root, _ Ref) Ref     { return root }

func (t *treap[K, V, A, D]) above(x, y Ref) bool {
	return t.nodes[x].prio >= t.nodes[y].prio
}

// build links the halves bottom-up with join3, which moves nodes of higher
// priority up.
func (t *treap[K, V, A, D]) build(nodes []Ref) Ref {
	if len(nodes) == 0 {
		return Nil
	}
	mid := len(nodes) / 2
	l, r := t.build(nodes[:mid]), t.build(nodes[mid+1:])
	return t.join3(l, nodes[mid], r)
}

func (t *treap[K, V, A, D]) insert(root, x Ref) Ref {
	l, r := t.split(root, t.nodes[x].key)
	return t.join3(l, x, r)
}

func (t *treap[K, V, A, D]) removeNode(x Ref) Ref {
	t.applyRootToNode(x)
	p := t.nodes[x].p
	l, r := t.orphan(t.nodes[x].l), t.orphan(t.nodes[x].r)
	j := t.join(l, r)
	t.replaceChild(p, x, j)
	t.reset(x)
	if p == Nil {
		return j
	}
	t.updateToRoot(p)
	return t.rootOf(p)
}

func (t *treap[K, V, A, D]) join3(l, m, r Ref) Ref {
	switch {
	case t.above(m, l) && t.above(m, r):
		t.setLeft(m, l)
		t.setRight(m, r)
		t.nodes[m].p = Nil
		t.update(m)
		return m
	case t.above(l, r):
		t.applyDeferred(l)
		t.setRight(l, t.join3(t.orphan(t.nodes[l].r), m, r))
		t.update(l)
		return l
	default:
		t.applyDeferred(r)
		t.setLeft(r, t.join3(l, m, t.orphan(t.nodes[r].l)))
		t.update(r)
		return r
	}
}

func (t *treap[K, V, A, D]) join(l, r Ref) Ref {
	if l == Nil {
		return r
	}
	if r == Nil {
		return l
	}
	if t.above(l, r) {
		t.applyDeferred(l)
		t.setRight(l, t.join(t.orphan(t.nodes[l].r), r))
		t.update(l)
		return l
	}
	t.applyDeferred(r)
	t.setLeft(r, t.join(l, t.orphan(t.nodes[r].l)))
	t.update(r)
	return r
}

func (t *treap[K, V, A, D]) split(root Ref, key K) (Ref, Ref) {
	if root == Nil {
		return Nil, Nil
	}
	t.applyDeferred(root)
	if t.cmp(t.nodes[root].key, key) < 0 {
		a, b := t.split(t.orphan(t.nodes[root].r), key)
		t.setRight(root, a)
		t.update(root)
		return root, b
	}
	a, b := t.split(t.orphan(t.nodes[root].l), key)
	t.setLeft(root, b)
	t.update(root)
	return a, root
}

func (t *treap[K, V, A, D]) splitAt(root Ref, i int) (Ref, Ref) {
	if root == Nil {
		return Nil, Nil
	}
	t.applyDeferred(root)
	ls := t.nodes[t.nodes[root].l].size
	if ls < i {
		a, b := t.splitAt(t.orphan(t.nodes[root].r), i-ls-1)
		t.setRight(root, a)
		t.update(root)
		return root, b
	}
	a, b := t.splitAt(t.orphan(t.nodes[root].l), i)
	t.setLeft(root, b)
	t.update(root)
	return a, root
}

// union uses the root with the higher priority as pivot. The pivot stays on
// top, as it dominates everything in both trees.
func (t *treap[K, V, A, D]) union(a, b Ref) Ref {
	if a == Nil {
		return b
	}
	if b == Nil {
		return a
	}
	if !t.above(a, b) {
		a, b = b, a
	}
	l, m, r := t.expose(a)
	bl, br := t.split(b, t.nodes[m].key)
	return t.join3(t.union(l, bl), m, t.union(r, br))
}

func (t *treap[K, V, A, D]) check(root Ref) error {
	for x := range t.preorder(root) {
		for _, c := range [2]Ref{t.nodes[x].l, t.nodes[x].r} {
			if c != Nil && !t.above(x, c) {
				return fmt.Errorf("%w: priority of node %d below its child %d", ErrCorrupted, x, c)
			}
		}
	}
	return nil
}
