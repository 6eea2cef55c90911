// impl_corridor.go — implementation of the Corridor(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits walkways (i-1) → i for i=1..n-1 in stable increasing order;
//     WithTwoWay additionally emits i → (i-1) immediately after each.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(n) edges.
//   - Space: O(1) extra.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn, deterministic emission order,
//     deterministic distances/coefficients given a fixed seed.

package builder

import (
	"fmt"

	"github.com/walkroute/flowpath/core"
)

const (
	methodCorridor   = "Corridor"
	minCorridorNodes = 2
)

// Corridor builds a chain of n nodes — the shape of a shopping street —
// and returns the raw (unweighted) graph.
func Corridor(n int, opts ...BuilderOption) (*core.Graph, error) {
	if n < minCorridorNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCorridor, n, minCorridorNodes, ErrTooFewNodes)
	}

	cfg := newConfig(opts)
	g := core.NewGraph()

	// Nodes first, in index order, so insertion order never depends on edges.
	for i := 0; i < n; i++ {
		if err := g.AddNode(cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", methodCorridor, cfg.idFn(i), err)
		}
	}

	// Walkways (i-1) → i in increasing order.
	for i := 1; i < n; i++ {
		if err := emit(g, &cfg, methodCorridor, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
			return nil, err
		}
	}

	return g, nil
}
