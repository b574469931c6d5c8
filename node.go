package augtree

func (s *store[K, V, A, D]) isBlack(x Ref) bool {
	return x == Nil || s.nodes[x].black
}

func (s *store[K, V, A, D]) isRed(x Ref) bool {
	return x != Nil && !s.nodes[x].black
}

func (s *store[K, V, A, D]) setLeft(x, c Ref) {
	s.nodes[x].l = c
	if c != Nil {
		s.nodes[c].p = x
	}
}

func (s *store[K, V, A, D]) setRight(x, c Ref) {
	s.nodes[x].r = c
	if c != Nil {
		s.nodes[c].p = x
	}
}

// orphan clears the parent link of a subtree root.
func (s *store[K, V, A, D]) orphan(x Ref) Ref {
	if x != Nil {
		s.nodes[x].p = Nil
	}
	return x
}

// replaceChild makes c take the place of child old of p. p may be Nil, in
// which case c becomes a root.
func (s *store[K, V, A, D]) replaceChild(p, old, c Ref) {
	if p == Nil {
		s.orphan(c)
		return
	}
	if s.nodes[p].l == old {
		s.setLeft(p, c)
	} else {
		s.setRight(p, c)
	}
}

// sibling returns the other child of p. x may be Nil.
func (s *store[K, V, A, D]) sibling(x, p Ref) Ref {
	if s.nodes[p].l == x {
		return s.nodes[p].r
	}
	return s.nodes[p].l
}

func (s *store[K, V, A, D]) rootOf(x Ref) Ref {
	for x != Nil && s.nodes[x].p != Nil {
		x = s.nodes[x].p
	}
	return x
}

// rotateUp rotates x above its parent. Pending operations of x and its parent
// must have been applied. Size and aggregate of both nodes are recomputed;
// ancestors keep their values, as their subtrees still hold the same nodes.
func (s *store[K, V, A, D]) rotateUp(x Ref) {
	p := s.nodes[x].p
	assert(p != Nil, "augtree: rotation of a root")
	g := s.nodes[p].p
	if s.nodes[p].l == x {
		s.setLeft(p, s.nodes[x].r)
		s.setRight(x, p)
	} else {
		s.setRight(p, s.nodes[x].l)
		s.setLeft(x, p)
	}
	s.nodes[x].p = g
	if g != Nil {
		if s.nodes[g].l == p {
			s.nodes[g].l = x
		} else {
			s.nodes[g].r = x
		}
	}
	s.update(p)
	s.update(x)
	s.stats.Rotations++
}

// swapPositions exchanges the places of a and its descendant b in the tree,
// including strategy metadata bound to positions. Handles stay attached to
// their keys and values. Sizes and aggregates are left stale for the caller
// to recompute from the deeper position upwards.
func (s *store[K, V, A, D]) swapPositions(a, b Ref) {
	na, nb := s.nodes[a], s.nodes[b]
	s.nodes[a].black, s.nodes[b].black = nb.black, na.black
	s.replaceChild(na.p, a, b)
	if nb.p == a {
		if na.l == b {
			s.setLeft(b, a)
			s.setRight(b, na.r)
		} else {
			s.setRight(b, a)
			s.setLeft(b, na.l)
		}
	} else {
		s.setLeft(b, na.l)
		s.setRight(b, na.r)
		s.replaceChild(nb.p, b, a)
	}
	s.nodes[a].l, s.nodes[a].r = Nil, Nil
	s.setLeft(a, nb.l)
	s.setRight(a, nb.r)
}

// pushDownForRemoval makes sure x has at most one child, swapping it with its
// in-order predecessor if needed. The path from the root to x must have been
// applied.
func (s *store[K, V, A, D]) pushDownForRemoval(x Ref) {
	if s.nodes[x].l == Nil || s.nodes[x].r == Nil {
		return
	}
	y := s.nodes[x].l
	for s.applyDeferred(y); s.nodes[y].r != Nil; s.applyDeferred(y) {
		y = s.nodes[y].r
	}
	s.swapPositions(x, y)
}

// --- Access --------------------------------------------------------------

// descend walks from root towards key, applying deferred operations. It
// returns the node with an equal key (or Nil) and the last node visited.
func (s *store[K, V, A, D]) descend(root Ref, key K) (found, last Ref) {
	for x := root; x != Nil; {
		s.applyDeferred(x)
		last = x
		c := s.cmp(key, s.nodes[x].key)
		switch {
		case c < 0:
			x = s.nodes[x].l
		case c > 0:
			x = s.nodes[x].r
		default:
			return x, x
		}
	}
	return Nil, last
}

// at returns the node with in-order index i, and the last node visited.
func (s *store[K, V, A, D]) at(root Ref, i int) (found, last Ref) {
	if i < 0 || i >= s.nodes[root].size {
		return Nil, Nil
	}
	for x := root; x != Nil; {
		s.applyDeferred(x)
		last = x
		ls := s.nodes[s.nodes[x].l].size
		switch {
		case i < ls:
			x = s.nodes[x].l
		case i == ls:
			return x, x
		default:
			i -= ls + 1
			x = s.nodes[x].r
		}
	}
	return Nil, last
}

// bound returns the first node with key ≥ key (strict == false) or key > key
// (strict == true), and the last node visited.
func (s *store[K, V, A, D]) bound(root Ref, key K, strict bool) (found, last Ref) {
	for x := root; x != Nil; {
		s.applyDeferred(x)
		last = x
		c := s.cmp(s.nodes[x].key, key)
		if c > 0 || (c == 0 && !strict) {
			found = x
			x = s.nodes[x].l
		} else {
			x = s.nodes[x].r
		}
	}
	return found, last
}

// leftmost returns the first node of a subtree, applying deferred operations
// on the way.
func (s *store[K, V, A, D]) leftmost(root Ref) Ref {
	if root == Nil {
		return Nil
	}
	x := root
	for s.applyDeferred(x); s.nodes[x].l != Nil; s.applyDeferred(x) {
		x = s.nodes[x].l
	}
	return x
}

// rightmost returns the last node of a subtree, applying deferred operations
// on the way.
func (s *store[K, V, A, D]) rightmost(root Ref) Ref {
	if root == Nil {
		return Nil
	}
	x := root
	for s.applyDeferred(x); s.nodes[x].r != Nil; s.applyDeferred(x) {
		x = s.nodes[x].r
	}
	return x
}

// rank returns the in-order index of x within its tree.
func (s *store[K, V, A, D]) rank(x Ref) int {
	i := s.nodes[s.nodes[x].l].size
	for p := s.nodes[x].p; p != Nil; x, p = p, s.nodes[p].p {
		if s.nodes[p].r == x {
			i += s.nodes[s.nodes[p].l].size + 1
		}
	}
	return i
}

// insertLeaf attaches the detached node x as a leaf below root, placing it
// before nodes with equal keys. It returns the parent of x; sizes and
// aggregates on the path are not updated.
func (s *store[K, V, A, D]) insertLeaf(root, x Ref) Ref {
	key := s.nodes[x].key
	for p := root; ; {
		s.applyDeferred(p)
		if s.cmp(s.nodes[p].key, key) < 0 {
			if s.nodes[p].r == Nil {
				s.setRight(p, x)
				return p
			}
			p = s.nodes[p].r
		} else {
			if s.nodes[p].l == Nil {
				s.setLeft(p, x)
				return p
			}
			p = s.nodes[p].l
		}
	}
}

// --- Bulk operations -------------------------------------------------------

// build links sorted detached nodes into a tree of minimum height. Nodes must
// not carry pending operations.
func (s *store[K, V, A, D]) build(nodes []Ref) Ref {
	if len(nodes) == 0 {
		return Nil
	}
	mid := len(nodes) / 2
	x := nodes[mid]
	s.nodes[x].p = Nil
	s.setLeft(x, s.build(nodes[:mid]))
	s.setRight(x, s.build(nodes[mid+1:]))
	s.update(x)
	return x
}

// flatten collects the nodes of a subtree in order, applying deferred
// operations and detaching every node.
func (s *store[K, V, A, D]) flatten(root Ref, out []Ref) []Ref {
	var stack []Ref
	for x := root; x != Nil || len(stack) > 0; {
		for ; x != Nil; x = s.nodes[x].l {
			s.applyDeferred(x)
			stack = append(stack, x)
		}
		x = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, x)
		x = s.nodes[x].r
	}
	for _, x := range out {
		n := &s.nodes[x]
		n.l, n.r, n.p = Nil, Nil, Nil
	}
	return out
}

func (s *store[K, V, A, D]) height(root Ref) int {
	if root == Nil {
		return 0
	}
	return 1 + max(s.height(s.nodes[root].l), s.height(s.nodes[root].r))
}
