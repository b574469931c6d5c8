package augtree

import (
	"cmp"
	"fmt"
)

// redBlack keeps every path from a node to an absent child at the same number
// of black nodes, and never puts a red node below a red one.
type redBlack[K, V, A, D any] struct {
	*store[K, V, A, D]
}

func (t *redBlack[K, V, A, D]) kind() Kind                 { return RedBlack }
func (t *redBlack[K, V, A, D]) capabilities() Capabilities { return fullCapabilities }
func (t *redBlack[K, V, A, D]) access(root, _ Ref) Ref     { return root }

func (t *redBlack[K, V, A, D]) blacken(x Ref) {
	if x != Nil {
		t.nodes[x].black = true
	}
}

// build creates a minimum-height tree. The deepest level is colored red,
// all others black, which balances paths ending one level higher.
func (t *redBlack[K, V, A, D]) build(nodes []Ref) Ref {
	root := t.store.build(nodes)
	t.colorByDepth(root, 0, t.height(root))
	t.blacken(root)
	return root
}

func (t *redBlack[K, V, A, D]) colorByDepth(x Ref, depth, h int) {
	if x == Nil {
		return
	}
	t.nodes[x].black = depth != h-1
	t.colorByDepth(t.nodes[x].l, depth+1, h)
	t.colorByDepth(t.nodes[x].r, depth+1, h)
}

func (t *redBlack[K, V, A, D]) insert(root, x Ref) Ref {
	if root == Nil {
		t.blacken(x)
		return x
	}
	p := t.insertLeaf(root, x)
	t.nodes[x].black = false
	t.updateToRoot(p)
	for {
		p = t.nodes[x].p
		if p == Nil {
			t.blacken(x)
			return x
		}
		if t.nodes[p].black {
			return t.rootOf(p)
		}
		g := t.nodes[p].p // p is red, so it is not the root
		if u := t.sibling(p, g); t.isRed(u) {
			t.blacken(p)
			t.blacken(u)
			t.nodes[g].black = false
			x = g
			continue
		}
		if (t.nodes[p].r == x) != (t.nodes[g].r == p) {
			t.rotateUp(x)
			x, p = p, x
		}
		t.rotateUp(p)
		t.blacken(p)
		t.nodes[g].black = false
		return t.rootOf(p)
	}
}

func (t *redBlack[K, V, A, D]) removeNode(x Ref) Ref {
	t.applyRootToNode(x)
	t.pushDownForRemoval(x)
	c := t.nodes[x].l
	if c == Nil {
		c = t.nodes[x].r
	}
	p, wasBlack := t.nodes[x].p, t.nodes[x].black
	t.replaceChild(p, x, c)
	t.reset(x)
	t.nodes[x].black = false
	t.updateToRoot(p)
	if !wasBlack {
		return t.rootOf(cmp.Or(p, c))
	}
	t.fixDoubleBlack(c, p)
	if c != Nil {
		p = c
	}
	root := t.rootOf(p)
	t.blacken(root)
	return root
}

// fixDoubleBlack restores equal black heights after a black node has been
// removed above x. x may be Nil, therefore its parent is passed separately.
// The path from the root to p must have been applied.
func (t *redBlack[K, V, A, D]) fixDoubleBlack(x, p Ref) {
	for p != Nil && t.isBlack(x) {
		left := t.nodes[p].l == x
		w := t.sibling(x, p)
		t.applyDeferred(w)
		if t.isRed(w) {
			t.blacken(w)
			t.nodes[p].black = false
			t.rotateUp(w)
			w = t.sibling(x, p)
			t.applyDeferred(w)
		}
		near, far := t.nodes[w].l, t.nodes[w].r
		if !left {
			near, far = far, near
		}
		if t.isBlack(near) && t.isBlack(far) {
			t.nodes[w].black = false
			x, p = p, t.nodes[p].p
			continue
		}
		if t.isBlack(far) {
			t.applyDeferred(near)
			t.blacken(near)
			t.nodes[w].black = false
			t.rotateUp(near)
			w, far = near, w
		}
		t.nodes[w].black = t.nodes[p].black
		t.blacken(p)
		t.blacken(far)
		t.rotateUp(w)
		return
	}
	t.blacken(x)
}

// blackHeight counts the black nodes on the leftmost path below x,
// including x.
func (t *redBlack[K, V, A, D]) blackHeight(x Ref) int {
	h := 0
	for ; x != Nil; x = t.nodes[x].l {
		if t.nodes[x].black {
			h++
		}
	}
	return h
}

func (t *redBlack[K, V, A, D]) join3(l, m, r Ref) Ref {
	t.blacken(l)
	t.blacken(r)
	var root Ref
	switch hd := t.blackHeight(l) - t.blackHeight(r); {
	case hd > 0:
		root = t.join3Right(l, m, r, hd)
	case hd < 0:
		root = t.join3Left(l, m, r, -hd)
	default:
		root = t.link(l, m, r)
	}
	t.nodes[root].p = Nil
	t.blacken(root)
	return root
}

// link makes l and r the subtrees of the red node m.
func (t *redBlack[K, V, A, D]) link(l, m, r Ref) Ref {
	t.setLeft(m, l)
	t.setRight(m, r)
	t.nodes[m].black = false
	t.update(m)
	return m
}

// join3Right descends the right spine of the taller tree l until it finds a
// black node of the black height of r. hd is the black-height difference
// between l and r.
func (t *redBlack[K, V, A, D]) join3Right(l, m, r Ref, hd int) Ref {
	if t.isBlack(l) && hd == 0 {
		return t.link(l, m, r)
	}
	t.applyDeferred(l)
	if t.nodes[l].black {
		hd--
	}
	t.setRight(l, t.join3Right(t.nodes[l].r, m, r, hd))
	if rr := t.nodes[l].r; t.nodes[l].black && t.isRed(rr) && t.isRed(t.nodes[rr].r) {
		t.blacken(t.nodes[rr].r)
		t.rotateUp(rr)
		return rr
	}
	t.update(l)
	return l
}

// join3Left is the mirror image of join3Right for a taller right tree.
func (t *redBlack[K, V, A, D]) join3Left(l, m, r Ref, hd int) Ref {
	if t.isBlack(r) && hd == 0 {
		return t.link(l, m, r)
	}
	t.applyDeferred(r)
	if t.nodes[r].black {
		hd--
	}
	t.setLeft(r, t.join3Left(l, m, t.nodes[r].l, hd))
	if rl := t.nodes[r].l; t.nodes[r].black && t.isRed(rl) && t.isRed(t.nodes[rl].l) {
		t.blacken(t.nodes[rl].l)
		t.rotateUp(rl)
		return rl
	}
	t.update(r)
	return r
}

func (t *redBlack[K, V, A, D]) join(l, r Ref) Ref {
	return t.joinByRemoval(t.join3, t.removeNode, l, r)
}

func (t *redBlack[K, V, A, D]) split(root Ref, key K) (Ref, Ref) {
	return t.splitByKey(t.join3, root, key)
}

func (t *redBlack[K, V, A, D]) splitAt(root Ref, i int) (Ref, Ref) {
	return t.splitByIndex(t.join3, root, i)
}

func (t *redBlack[K, V, A, D]) union(a, b Ref) Ref {
	return t.unionBySplit(t.join3, t.split, a, b)
}

func (t *redBlack[K, V, A, D]) check(root Ref) error {
	if t.isRed(root) {
		return fmt.Errorf("%w: red root %d", ErrCorrupted, root)
	}
	_, err := t.checkColors(root)
	return err
}

// checkColors returns the black height of x.
func (t *redBlack[K, V, A, D]) checkColors(x Ref) (int, error) {
	if x == Nil {
		return 0, nil
	}
	n := &t.nodes[x]
	if !n.black && (t.isRed(n.l) || t.isRed(n.r)) {
		return 0, fmt.Errorf("%w: red node %d has a red child", ErrCorrupted, x)
	}
	lh, err := t.checkColors(n.l)
	if err != nil {
		return 0, err
	}
	rh, err := t.checkColors(n.r)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black heights %d and %d below node %d", ErrCorrupted, lh, rh, x)
	}
	if n.black {
		lh++
	}
	return lh, nil
}
