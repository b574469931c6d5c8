package augtree

// static trees are built once and never change shape afterwards. Lookups and
// deferred operations work as for every other strategy.
type static[K, V, A, D any] struct {
	*store[K, V, A, D]
	unsupported[K]
}

func (t *static[K, V, A, D]) kind() Kind                 { return Static }
func (t *static[K, V, A, D]) capabilities() Capabilities { return Capabilities{} }
func (t *static[K, V, A, D]) build(nodes []Ref) Ref      { return t.store.build(nodes) }
func (t *static[K, V, A, D]) check(Ref) error            { return nil }
