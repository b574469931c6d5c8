package agg

import (
	"cmp"
	"math/rand/v2"
	"testing"

	"github.com/npillmayer/augtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

var kinds = []augtree.Kind{augtree.RedBlack, augtree.Splay, augtree.Treap, augtree.Scapegoat}

func TestAggregatorLaws(t *testing.T) {
	var gcd GCD[int, int]
	require.Equal(t, 6, gcd.Add(gcd.Of(0, 12), gcd.Of(0, -18)))
	require.Equal(t, 7, gcd.Add(gcd.Zero(), gcd.Of(0, 7)))

	var mn Min[int, int]
	require.False(t, mn.Zero().Valid)
	require.Equal(t, Bound[int]{Value: 3, Valid: true}, mn.Add(mn.Of(0, 5), mn.Add(mn.Zero(), mn.Of(0, 3))))
	require.Equal(t, "none", mn.Zero().String())

	var st StatsOf[int, int]
	s := st.Add(st.Of(0, 4), st.Add(st.Of(0, -2), st.Zero()))
	require.Equal(t, Stats[int]{Count: 2, Sum: 2, Min: -2, Max: 4}, s)
	require.InDelta(t, 1.0, s.Mean(), 1e-9)

	p := PairOf[int, int, int, Bound[int]]{First: Sum[int, int]{}, Second: Max[int, int]{}}
	require.Equal(t, Pair[int, Bound[int]]{First: 9, Second: Bound[int]{Value: 5, Valid: true}},
		p.Add(p.Of(0, 4), p.Of(0, 5)))
}

func TestStatsWithAddEach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "augtree")
	defer teardown()

	for _, kind := range kinds {
		tree, err := augtree.New(augtree.Config[int, int, Stats[int], int]{
			Strategy:   kind,
			Compare:    cmp.Compare[int],
			Aggregator: StatsOf[int, int]{},
			Deferred:   AddEach[int, int]{},
		})
		require.NoError(t, err)
		rnd := rand.New(rand.NewPCG(7, 11))
		oracle := map[int]int{}
		var root augtree.Ref
		for len(oracle) < 200 {
			k, v := rnd.IntN(10000), rnd.IntN(100)-50
			if _, ok := oracle[k]; ok {
				continue
			}
			oracle[k] = v
			root = tree.Insert(root, k, v)
		}
		tree.AddDeferred(root, 10)
		tree.AddDeferred(root, -3)
		want := Stats[int]{}
		for _, v := range oracle {
			want = StatsOf[int, int]{}.Add(want, StatsOf[int, int]{}.Of(0, v+7))
		}
		require.Equal(t, want, tree.Agg(root), kind.String())
		require.NoError(t, tree.Check(root), kind.String())
		for k, v := range tree.All(root) {
			require.Equal(t, oracle[k]+7, v)
		}
	}
}

func TestDeferredComposition(t *testing.T) {
	// adding 3, then 4 is the same as adding 7 once
	build := func() (*augtree.Tree[int, int, int, int], augtree.Ref) {
		tree, err := augtree.New(augtree.Config[int, int, int, int]{
			Strategy:   augtree.RedBlack,
			Compare:    cmp.Compare[int],
			Aggregator: Sum[int, int]{},
			Deferred:   AddEachSum[int, int]{},
		})
		require.NoError(t, err)
		keys := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		return tree, tree.Build(keys, keys)
	}
	t1, r1 := build()
	t1.AddDeferred(r1, 3)
	t1.AddDeferred(r1, 4)
	t2, r2 := build()
	t2.AddDeferred(r2, 7)
	require.Equal(t, t2.Agg(r2), t1.Agg(r1))
	require.Equal(t, 55+70, t1.Agg(r1))
	var v1, v2 []int
	for _, v := range t1.All(r1) {
		v1 = append(v1, v)
	}
	for _, v := range t2.All(r2) {
		v2 = append(v2, v)
	}
	require.Equal(t, v2, v1)
}

func TestDeferredSurvivesRestructuring(t *testing.T) {
	for _, kind := range []augtree.Kind{augtree.RedBlack, augtree.Splay, augtree.Treap} {
		tree, err := augtree.New(augtree.Config[int, int, int, int]{
			Strategy:   kind,
			Compare:    cmp.Compare[int],
			Aggregator: Sum[int, int]{},
			Deferred:   AddEachSum[int, int]{},
		})
		require.NoError(t, err)
		var root augtree.Ref
		for k := range 100 {
			root = tree.Insert(root, k, 1)
		}
		// add 5 to values of keys 20..59 only
		l, r := tree.Split(root, 20)
		m, r := tree.Split(r, 60)
		tree.AddDeferred(m, 5)
		root = tree.Join(l, tree.Join(m, r))
		require.Equal(t, 100+40*5, tree.Agg(root), kind.String())
		for k := 0; k < 100; k += 7 {
			root, _, _ = tree.Remove(root, k)
		}
		require.NoError(t, tree.Check(root), kind.String())
		sum := 0
		for k, v := range tree.All(root) {
			want := 1
			if k >= 20 && k < 60 {
				want = 6
			}
			require.Equal(t, want, v, "key %d", k)
			sum += v
		}
		require.Equal(t, sum, tree.Agg(root))
	}
}

func TestAddEachKeyShiftsKeys(t *testing.T) {
	tree, err := augtree.New(augtree.Config[int, string, int, int]{
		Strategy:   augtree.Treap,
		Compare:    cmp.Compare[int],
		Aggregator: SumKeys[int, string]{},
		Deferred:   AddEachKey[int, string]{},
	})
	require.NoError(t, err)
	root := tree.Build([]int{10, 20, 30}, []string{"a", "b", "c"})
	l, r := tree.Split(root, 20)
	tree.AddDeferred(r, 100)
	root = tree.Join(l, r)
	require.Equal(t, 10+120+130, tree.Agg(root))
	require.Equal(t, []int{10, 120, 130}, tree.Keys(root))
	x := tree.Find(&root, 120)
	require.NotEqual(t, augtree.Nil, x)
	require.Equal(t, "b", tree.Value(x))
}

func TestAssignEach(t *testing.T) {
	tree, err := augtree.New(augtree.Config[int, int, int, Assignment[int]]{
		Strategy:   augtree.Splay,
		Compare:    cmp.Compare[int],
		Aggregator: Sum[int, int]{},
		Deferred:   AssignEach[int, int]{},
	})
	require.NoError(t, err)
	keys := []int{1, 2, 3, 4, 5, 6}
	root := tree.Build(keys, keys)
	tree.AddDeferred(root, Assign(2))
	tree.AddDeferred(root, Assign(3))
	require.Equal(t, 18, tree.Agg(root))
	root, seg := tree.Segment(root, 1, 4)
	require.Equal(t, 9, seg)
	x := tree.At(&root, 5)
	tree.SetValue(x, 10)
	require.Equal(t, 25, tree.Agg(root))
	require.NoError(t, tree.Check(root))
}

func TestMinMaxAfterRemoval(t *testing.T) {
	tree, err := augtree.New(augtree.Config[int, int, Pair[Bound[int], Bound[int]], augtree.Empty]{
		Strategy: augtree.Scapegoat,
		Compare:  cmp.Compare[int],
		Aggregator: PairOf[int, int, Bound[int], Bound[int]]{
			First: Min[int, int]{}, Second: Max[int, int]{},
		},
		Deferred: augtree.NoDeferred[int, int, Pair[Bound[int], Bound[int]]]{},
	})
	require.NoError(t, err)
	var root augtree.Ref
	for _, k := range []int{5, 1, 9, 3, 7} {
		root = tree.Insert(root, k, k*k)
	}
	require.Equal(t, 1, tree.Agg(root).First.Value)
	require.Equal(t, 81, tree.Agg(root).Second.Value)
	root, v, ok := tree.Remove(root, 9)
	require.True(t, ok)
	require.Equal(t, 81, v)
	root, _, _ = tree.Remove(root, 1)
	require.Equal(t, 9, tree.Agg(root).First.Value)
	require.Equal(t, 49, tree.Agg(root).Second.Value)
	require.NoError(t, tree.Check(root))
}

func TestGCDOverTree(t *testing.T) {
	tree, err := augtree.New(augtree.Config[int, int, int, augtree.Empty]{
		Strategy:   augtree.Static,
		Compare:    cmp.Compare[int],
		Aggregator: GCD[int, int]{},
		Deferred:   augtree.NoDeferred[int, int, int]{},
	})
	require.NoError(t, err)
	root := tree.Build([]int{1, 2, 3, 4}, []int{12, 18, -30, 42})
	require.Equal(t, 6, tree.Agg(root))
}

func TestMedian(t *testing.T) {
	tree := augtree.NewOrdered[int, struct{}](augtree.Splay, 0)
	var root augtree.Ref
	require.False(t, Median(tree, &root).Valid)
	for _, k := range []int{9, 1, 5, 3} {
		root = tree.Insert(root, k, struct{}{})
	}
	require.Equal(t, Bound[float64]{Value: 4, Valid: true}, Median(tree, &root))
	root = tree.Insert(root, 7, struct{}{})
	require.Equal(t, Bound[float64]{Value: 5, Valid: true}, Median(tree, &root))
}
