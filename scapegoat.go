package augtree

import "fmt"

// scapegoat keeps every node weight-balanced: no child holds more than alpha
// times the nodes of its parent's subtree. Unbalanced subtrees are rebuilt
// from scratch.
//
// Removal splices the node out of the tree right away, there are no
// tombstones.
type scapegoat[K, V, A, D any] struct {
	*store[K, V, A, D]
	unsupported[K]
}

func (t *scapegoat[K, V, A, D]) kind() Kind { return Scapegoat }

func (t *scapegoat[K, V, A, D]) capabilities() Capabilities {
	return Capabilities{Insert: true, Remove: true, RemoveByNode: true}
}

func (t *scapegoat[K, V, A, D]) access(root, _ Ref) Ref { return root }

func (t *scapegoat[K, V, A, D]) build(nodes []Ref) Ref {
	return t.store.build(nodes)
}

func (t *scapegoat[K, V, A, D]) insert(root, x Ref) Ref {
	if root == Nil {
		return x
	}
	p := t.insertLeaf(root, x)
	return t.rebalanceToRoot(p)
}

func (t *scapegoat[K, V, A, D]) removeNode(x Ref) Ref {
	t.applyRootToNode(x)
	t.pushDownForRemoval(x)
	c := t.nodes[x].l
	if c == Nil {
		c = t.nodes[x].r
	}
	p := t.nodes[x].p
	t.replaceChild(p, x, c)
	t.reset(x)
	if p == Nil {
		return c
	}
	return t.rebalanceToRoot(p)
}

// rebalanceToRoot updates sizes and aggregates from x upwards, rebuilding
// every subtree which is out of balance. It returns the root.
func (t *scapegoat[K, V, A, D]) rebalanceToRoot(x Ref) Ref {
	for {
		t.update(x)
		if t.unbalanced(x) {
			x = t.rebuild(x)
		}
		p := t.nodes[x].p
		if p == Nil {
			return x
		}
		x = p
	}
}

func (t *scapegoat[K, V, A, D]) unbalanced(x Ref) bool {
	n := &t.nodes[x]
	heavy := max(t.nodes[n.l].size, t.nodes[n.r].size)
	return float64(heavy) > t.alpha*float64(n.size)
}

// rebuild replaces the subtree at x with a tree of minimum height and
// returns its new root.
func (t *scapegoat[K, V, A, D]) rebuild(x Ref) Ref {
	p := t.nodes[x].p
	size := t.nodes[x].size
	nodes := t.flatten(x, make([]Ref, 0, size))
	y := t.store.build(nodes)
	t.replaceChild(p, x, y)
	t.stats.Rebuilds++
	tracer().Debugf("scapegoat: rebuilt subtree of %d nodes", size)
	return y
}

func (t *scapegoat[K, V, A, D]) check(root Ref) error {
	for x := range t.preorder(root) {
		if t.unbalanced(x) {
			return fmt.Errorf("%w: node %d out of weight balance", ErrCorrupted, x)
		}
	}
	return nil
}
