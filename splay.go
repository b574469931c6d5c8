package augtree

// splay moves every accessed node to the root. It keeps no balance
// information; the amortized bounds rely on splaying after every access.
type splay[K, V, A, D any] struct {
	*store[K, V, A, D]
}

func (t *splay[K, V, A, D]) kind() Kind                 { return Splay }
func (t *splay[K, V, A, D]) capabilities() Capabilities { return fullCapabilities }

func (t *splay[K, V, A, D]) access(root, x Ref) Ref {
	if x == Nil {
		return root
	}
	t.splay(x)
	return x
}

// splay rotates x up to the root of its tree. The path from the root to x
// must have been applied.
func (t *splay[K, V, A, D]) splay(x Ref) {
	for p := t.nodes[x].p; p != Nil; p = t.nodes[x].p {
		g := t.nodes[p].p
		switch {
		case g == Nil:
			t.rotateUp(x)
		case (t.nodes[g].l == p) == (t.nodes[p].l == x):
			t.rotateUp(p) // zig-zig
			t.rotateUp(x)
		default:
			t.rotateUp(x) // zig-zag
			t.rotateUp(x)
		}
	}
}

func (t *splay[K, V, A, D]) build(nodes []Ref) Ref {
	return t.store.build(nodes)
}

func (t *splay[K, V, A, D]) insert(root, x Ref) Ref {
	l, r := t.split(root, t.nodes[x].key)
	return t.join3(l, x, r)
}

func (t *splay[K, V, A, D]) removeNode(x Ref) Ref {
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
	t.splay(p)
	return p
}

// join splays the last node of l to the root, which leaves it without a
// right child.
func (t *splay[K, V, A, D]) join(l, r Ref) Ref {
	if l == Nil {
		return r
	}
	if r == Nil {
		return l
	}
	m := t.rightmost(l)
	t.splay(m)
	t.setRight(m, r)
	t.update(m)
	return m
}

func (t *splay[K, V, A, D]) join3(l, m, r Ref) Ref {
	t.setLeft(m, l)
	t.setRight(m, r)
	t.nodes[m].p = Nil
	t.update(m)
	return m
}

// split splays the last node with a key less than key and cuts off its right
// subtree. If there is no such node, the first node is splayed instead.
func (t *splay[K, V, A, D]) split(root Ref, key K) (Ref, Ref) {
	if root == Nil {
		return Nil, Nil
	}
	var less, last Ref
	for x := root; x != Nil; {
		t.applyDeferred(x)
		last = x
		if t.cmp(t.nodes[x].key, key) < 0 {
			less = x
			x = t.nodes[x].r
		} else {
			x = t.nodes[x].l
		}
	}
	if less == Nil {
		t.splay(last)
		return Nil, last
	}
	t.splay(less)
	return less, t.cutRight(less)
}

func (t *splay[K, V, A, D]) splitAt(root Ref, i int) (Ref, Ref) {
	if i <= 0 {
		return Nil, root
	}
	if i >= t.nodes[root].size {
		return root, Nil
	}
	x, _ := t.at(root, i-1)
	t.splay(x)
	return x, t.cutRight(x)
}

func (t *splay[K, V, A, D]) cutRight(x Ref) Ref {
	r := t.orphan(t.nodes[x].r)
	t.nodes[x].r = Nil
	t.update(x)
	return r
}

// union uses the median of the larger tree as pivot and splits the smaller
// one by its key.
func (t *splay[K, V, A, D]) union(a, b Ref) Ref {
	if a == Nil {
		return b
	}
	if b == Nil {
		return a
	}
	if t.nodes[a].size < t.nodes[b].size {
		a, b = b, a
	}
	m, _ := t.at(a, t.nodes[a].size/2)
	t.splay(m)
	l, m, r := t.expose(m)
	bl, br := t.split(b, t.nodes[m].key)
	return t.join3(t.union(l, bl), m, t.union(r, br))
}

func (t *splay[K, V, A, D]) check(Ref) error {
	return nil
}
