package augtree

import (
	"bytes"
	"cmp"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// sumOf sums values.
type sumOf struct{}

func (sumOf) Zero() int           { return 0 }
func (sumOf) Of(_ int, v int) int { return v }
func (sumOf) Add(a, b int) int    { return a + b }

// addToValues adds a delta to every value.
type addToValues struct{}

func (addToValues) Identity() int                          { return 0 }
func (addToValues) IsIdentity(d int) bool                  { return d == 0 }
func (addToValues) Compose(p, next int) int                { return p + next }
func (addToValues) Apply(d int, _ *int, v *int)            { *v += d }
func (addToValues) ApplyAggregate(d int, a int, n int) int { return a + d*n }

func newSumTree(t *testing.T, kind Kind) *Tree[int, int, int, int] {
	t.Helper()
	tree, err := New(Config[int, int, int, int]{
		Strategy:   kind,
		Compare:    cmp.Compare[int],
		Aggregator: sumOf{},
		Deferred:   addToValues{},
	})
	if err != nil {
		t.Fatalf("cannot create %v tree: %v", kind, err)
	}
	return tree
}

func TestConfigValidation(t *testing.T) {
	cfg := Config[int, int, int, int]{
		Compare:    cmp.Compare[int],
		Aggregator: sumOf{},
		Deferred:   addToValues{},
	}
	if _, err := New(cfg); err != nil {
		t.Fatalf("expected default configuration to be valid, got %v", err)
	}
	broken := []func(*Config[int, int, int, int]){
		func(c *Config[int, int, int, int]) { c.Compare = nil },
		func(c *Config[int, int, int, int]) { c.Aggregator = nil },
		func(c *Config[int, int, int, int]) { c.Deferred = nil },
		func(c *Config[int, int, int, int]) { c.Strategy = Kind(42) },
		func(c *Config[int, int, int, int]) { c.Strategy, c.Alpha = Scapegoat, 0.5 },
		func(c *Config[int, int, int, int]) { c.Alpha = 1.2 },
	}
	for i, breakIt := range broken {
		c := cfg
		breakIt(&c)
		if _, err := New(c); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("case %d: expected ErrInvalidConfig, got %v", i, err)
		}
	}
	if Kind(42).String() != "Kind(42)" || Treap.String() != "treap" {
		t.Errorf("unexpected kind names %q, %q", Kind(42), Treap)
	}
}

func TestRedBlackScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "augtree")
	defer teardown()
	//
	tree := NewOrdered[int, string](RedBlack, 8)
	keys := slices.Sorted(slices.Values([]int{5, 3, 8, 1, 4, 7, 9}))
	values := make([]string, len(keys))
	root := tree.Build(keys, values)
	if err := tree.Check(root); err != nil {
		t.Fatal(err)
	}
	if x := tree.Find(&root, 6); x != Nil {
		t.Errorf("expected 6 to be absent, found node %d", x)
	}
	if x := tree.At(&root, 3); tree.Key(x) != 5 {
		t.Errorf("expected key 5 at index 3, have %d", tree.Key(x))
	}
	root, _, ok := tree.Remove(root, 3)
	if !ok {
		t.Fatalf("expected to remove key 3")
	}
	if x := tree.At(&root, 0); tree.Key(x) != 1 {
		t.Errorf("expected key 1 at index 0, have %d", tree.Key(x))
	}
	if tree.Size(root) != 6 || tree.Used() != 6 {
		t.Errorf("expected 6 nodes, size is %d, arena holds %d", tree.Size(root), tree.Used())
	}
	if err := tree.Check(root); err != nil {
		t.Error(err)
	}
	if _, _, ok := tree.Remove(root, 3); ok {
		t.Errorf("key 3 removed twice")
	}
}

func TestScapegoatAscendingInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "augtree")
	defer teardown()
	//
	tree := NewOrdered[int, int](Scapegoat, 100)
	var root Ref
	for k := 1; k <= 100; k++ {
		root = tree.Insert(root, k, k)
	}
	limit := int(2 * math.Log2(101))
	if h := tree.Height(root); h > limit {
		t.Errorf("height %d exceeds %d", h, limit)
	}
	if tree.Stats().Rebuilds == 0 {
		t.Errorf("expected ascending inserts to trigger rebuilds")
	}
	if err := tree.Check(root); err != nil {
		t.Error(err)
	}
	for k := 1; k <= 100; k += 2 {
		root, _, _ = tree.Remove(root, k)
	}
	if err := tree.Check(root); err != nil {
		t.Error(err)
	}
	if tree.Size(root) != 50 {
		t.Errorf("expected 50 keys after removal, have %d", tree.Size(root))
	}
}

func TestSplayRepeatedAccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "augtree")
	defer teardown()
	//
	tree := NewOrdered[int, int](Splay, 100)
	var root Ref
	for k := range 100 {
		root = tree.Insert(root, k, k)
	}
	x := tree.Find(&root, 42)
	if x == Nil || root != x {
		t.Fatalf("expected 42 at the root after first access")
	}
	before := tree.Stats().Rotations
	if y := tree.Find(&root, 42); y != x || root != x {
		t.Errorf("expected 42 to stay at the root")
	}
	if n := tree.Stats().Rotations - before; n != 0 {
		t.Errorf("expected no rotations for the second access, have %d", n)
	}
	if err := tree.Check(root); err != nil {
		t.Error(err)
	}
}

func TestUnsupportedOperationsPanic(t *testing.T) {
	expectPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		f()
	}
	static := NewOrdered[int, int](Static, 0)
	root := static.Build([]int{1, 2, 3}, []int{1, 2, 3})
	if static.Capabilities() != (Capabilities{}) {
		t.Errorf("static trees must not support mutation")
	}
	expectPanic("static insert", func() { static.Insert(root, 4, 4) })
	expectPanic("static remove", func() { static.Remove(root, 1) })
	expectPanic("static split", func() { static.Split(root, 2) })
	if x := static.Find(&root, 2); static.Value(x) != 2 {
		t.Errorf("expected lookups in static trees to work")
	}
	sg := NewOrdered[int, int](Scapegoat, 0)
	expectPanic("scapegoat join", func() { sg.Join(Nil, Nil) })
	expectPanic("scapegoat union", func() { sg.Union(Nil, Nil) })
	expectPanic("unsorted build", func() { sg.Build([]int{2, 1}, []int{0, 0}) })
}

func TestNodeLifetime(t *testing.T) {
	tree := NewOrdered[int, int](Treap, 0)
	var root Ref
	for k := range 20 {
		root = tree.Insert(root, k, k)
	}
	x := tree.Find(&root, 7)
	root = tree.Detach(x)
	if tree.Size(root) != 19 || tree.Used() != 20 {
		t.Errorf("detached node must stay allocated")
	}
	root = tree.InsertNode(root, x)
	if tree.Rank(x) != 7 {
		t.Errorf("expected re-inserted node at rank 7, have %d", tree.Rank(x))
	}
	root = tree.RemoveNode(x)
	if tree.Used() != 19 {
		t.Errorf("expected 19 live nodes, have %d", tree.Used())
	}
	tree.ReleaseTree(root)
	if tree.Used() != 0 {
		t.Errorf("expected empty arena, have %d nodes", tree.Used())
	}
	// released slots are reused
	n := len(tree.s.nodes)
	tree.Insert(Nil, 1, 1)
	if len(tree.s.nodes) != n {
		t.Errorf("expected a free slot to be reused")
	}
}

func TestDumps(t *testing.T) {
	tree := NewOrdered[int, int](RedBlack, 0)
	var root Ref
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7, 8} {
		root = tree.Insert(root, k, k)
	}
	var dot bytes.Buffer
	if err := tree.Tree2Dot(root, &dot); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(dot.String(), "strict digraph {") || !strings.Contains(dot.String(), "8\\n#1") {
		t.Errorf("unexpected DOT output:\n%s", dot.String())
	}
	var out bytes.Buffer
	if err := tree.Fprint(&out, root); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 8 || !strings.HasPrefix(lines[0], "            8 (1) R") {
		t.Errorf("unexpected tree print:\n%s", out.String())
	}
}
