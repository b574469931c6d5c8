package cmps

import (
	"fmt"
	"testing"

	"github.com/biogo/store/llrb"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/npillmayer/augtree"
	gollrb "github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/require"
)

// intKey makes ints usable with biogo/store.
type intKey int

func (k intKey) Compare(o llrb.Comparable) int {
	return int(k) - int(o.(intKey))
}

var kinds = []augtree.Kind{augtree.RedBlack, augtree.Splay, augtree.Treap, augtree.Scapegoat}

// dedup returns the distinct keys, in order of first occurrence.
func dedup(keys []int) []int {
	seen := make(map[int]bool, len(keys))
	out := keys[:0:0]
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

func TestAgreeWithBaselines(t *testing.T) {
	keys := dedup(Keys(2000, 1))
	probes := Keys(500, 2)

	gb := btree.NewOrderedG[int](32)
	lr := gollrb.New()
	rb := redblacktree.NewWithIntComparator()
	bl := &llrb.Tree{}
	for _, k := range keys {
		gb.ReplaceOrInsert(k)
		lr.ReplaceOrInsert(gollrb.Int(k))
		rb.Put(k, k)
		bl.Insert(intKey(k))
	}
	require.Equal(t, len(keys), gb.Len())
	require.Equal(t, len(keys), lr.Len())
	require.Equal(t, len(keys), rb.Size())
	require.Equal(t, len(keys), bl.Len())

	for _, kind := range kinds {
		tree := augtree.NewOrdered[int, int](kind, len(keys))
		var root augtree.Ref
		for _, k := range keys {
			root = tree.Insert(root, k, k)
		}
		for _, p := range probes {
			_, want := gb.Get(p)
			require.Equal(t, want, tree.Find(&root, p) != augtree.Nil, "%v: key %d", kind, p)
			require.Equal(t, want, lr.Has(gollrb.Int(p)))
			_, found := rb.Get(p)
			require.Equal(t, want, found)
			require.Equal(t, want, bl.Get(intKey(p)) != nil)
		}
		i := 0
		gb.Ascend(func(k int) bool {
			require.Equal(t, k, tree.Key(tree.At(&root, i)), "%v: index %d", kind, i)
			i++
			return true
		})
		require.NoError(t, tree.Check(root))
	}
}

const benchSize = 10000

func BenchmarkInsert(b *testing.B) {
	keys := Keys(benchSize, 3)
	for _, kind := range kinds {
		b.Run(kind.String(), func(b *testing.B) {
			for range b.N {
				tree := augtree.NewOrdered[int, struct{}](kind, benchSize)
				var root augtree.Ref
				for _, k := range keys {
					root = tree.Insert(root, k, struct{}{})
				}
			}
		})
	}
	b.Run("google/btree", func(b *testing.B) {
		for range b.N {
			tree := btree.NewOrderedG[int](32)
			for _, k := range keys {
				tree.ReplaceOrInsert(k)
			}
		}
	})
	b.Run("GoLLRB", func(b *testing.B) {
		for range b.N {
			tree := gollrb.New()
			for _, k := range keys {
				tree.ReplaceOrInsert(gollrb.Int(k))
			}
		}
	})
	b.Run("gods", func(b *testing.B) {
		for range b.N {
			tree := redblacktree.NewWithIntComparator()
			for _, k := range keys {
				tree.Put(k, struct{}{})
			}
		}
	})
	b.Run("biogo", func(b *testing.B) {
		for range b.N {
			tree := &llrb.Tree{}
			for _, k := range keys {
				tree.Insert(intKey(k))
			}
		}
	})
}

func BenchmarkFind(b *testing.B) {
	keys := Keys(benchSize, 4)
	probes := Keys(benchSize, 5)
	for _, kind := range kinds {
		tree := augtree.NewOrdered[int, struct{}](kind, benchSize)
		var root augtree.Ref
		for _, k := range keys {
			root = tree.Insert(root, k, struct{}{})
		}
		b.Run(kind.String(), func(b *testing.B) {
			for i := range b.N {
				tree.Find(&root, probes[i%len(probes)])
			}
		})
	}
	gb := btree.NewOrderedG[int](32)
	rb := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		gb.ReplaceOrInsert(k)
		rb.Put(k, struct{}{})
	}
	b.Run("google/btree", func(b *testing.B) {
		for i := range b.N {
			gb.Get(probes[i%len(probes)])
		}
	})
	b.Run("gods", func(b *testing.B) {
		for i := range b.N {
			rb.Get(probes[i%len(probes)])
		}
	})
}

// BenchmarkSplitJoin has no counterpart in the baselines, which cannot split
// or concatenate in logarithmic time.
func BenchmarkSplitJoin(b *testing.B) {
	keys := Keys(benchSize, 6)
	for _, kind := range []augtree.Kind{augtree.RedBlack, augtree.Splay, augtree.Treap} {
		tree := augtree.NewOrdered[int, struct{}](kind, benchSize)
		var root augtree.Ref
		for _, k := range keys {
			root = tree.Insert(root, k, struct{}{})
		}
		b.Run(fmt.Sprintf("%v", kind), func(b *testing.B) {
			for i := range b.N {
				l, r := tree.Split(root, keys[i%len(keys)])
				root = tree.Join(l, r)
			}
		})
	}
}
