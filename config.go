package augtree

import (
	"cmp"
	"fmt"
)

// DefaultAlpha is the weight-balance ratio of scapegoat trees. It keeps the
// height at most twice the height of a perfectly balanced tree.
const DefaultAlpha = 0.7

// Kind selects the balancing strategy of a tree.
type Kind int8

const (
	RedBlack Kind = iota
	Splay
	Treap
	Scapegoat
	Static
)

func (k Kind) String() string {
	switch k {
	case RedBlack:
		return "red-black"
	case Splay:
		return "splay"
	case Treap:
		return "treap"
	case Scapegoat:
		return "scapegoat"
	case Static:
		return "static"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Config configures a tree.
//
// K is the key type, V the payload type, A the aggregate type and D the type
// of deferred operations.
type Config[K, V, A, D any] struct {
	// Strategy is the balancing strategy.
	Strategy Kind
	// Compare orders keys. It is required.
	Compare func(K, K) int
	// Aggregator rolls up subtree values. It is required.
	Aggregator Aggregator[K, V, A]
	// Deferred defines lazy subtree operations. It is required.
	Deferred Deferred[K, V, A, D]
	// Capacity is a hint for the number of nodes to reserve.
	Capacity int
	// Seed initializes the random priorities of treap nodes.
	Seed uint64
	// Priority, if set, derives treap priorities from keys instead of
	// drawing them at random.
	Priority func(K) uint64
	// Alpha is the weight-balance ratio of scapegoat trees, 0.5 < Alpha < 1.
	// Zero selects DefaultAlpha.
	Alpha float64
}

func (cfg Config[K, V, A, D]) normalized() Config[K, V, A, D] {
	if cfg.Alpha == 0 {
		cfg.Alpha = DefaultAlpha
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	if cfg.Capacity < 0 {
		cfg.Capacity = 0
	}
	return cfg
}

func (cfg Config[K, V, A, D]) validate() error {
	cfg = cfg.normalized()
	if cfg.Strategy < RedBlack || cfg.Strategy > Static {
		return fmt.Errorf("%w: unknown strategy %v", ErrInvalidConfig, cfg.Strategy)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	if cfg.Aggregator == nil {
		return fmt.Errorf("%w: aggregator is required", ErrInvalidConfig)
	}
	if cfg.Deferred == nil {
		return fmt.Errorf("%w: deferred operation type is required", ErrInvalidConfig)
	}
	if cfg.Alpha <= 0.5 || cfg.Alpha >= 1 {
		return fmt.Errorf("%w: scapegoat alpha %v not in (0.5, 1)", ErrInvalidConfig, cfg.Alpha)
	}
	return nil
}

// OrderedConfig returns a configuration for keys with a natural order, without
// aggregates and without deferred operations.
func OrderedConfig[K cmp.Ordered, V any](kind Kind) Config[K, V, Empty, Empty] {
	return Config[K, V, Empty, Empty]{
		Strategy:   kind,
		Compare:    cmp.Compare[K],
		Aggregator: NoAggregate[K, V]{},
		Deferred:   NoDeferred[K, V, Empty]{},
	}
}
