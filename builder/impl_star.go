// impl_star.go — implementation of the Star(leaves) constructor.
//
// Contract:
//   - leaves ≥ 1 (else ErrTooFewNodes).
//   - A central plaza node (CenterNodeID) plus leaves spoke nodes labelled
//     by cfg.idFn(0..leaves-1).
//   - Emits Center → leaf spokes in ascending leaf order; WithTwoWay adds
//     the walk back to the plaza.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(leaves).
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/walkroute/flowpath/core"
)

const (
	methodStar    = "Star"
	minStarLeaves = 1
)

// Star builds a plaza with spokes to the surrounding nodes and returns
// the raw graph.
func Star(leaves int, opts ...BuilderOption) (*core.Graph, error) {
	if leaves < minStarLeaves {
		return nil, fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, leaves, minStarLeaves, ErrTooFewNodes)
	}

	cfg := newConfig(opts)
	g := core.NewGraph()

	if err := g.AddNode(CenterNodeID); err != nil {
		return nil, fmt.Errorf("%s: AddNode(%s): %w", methodStar, CenterNodeID, err)
	}
	for i := 0; i < leaves; i++ {
		if err := g.AddNode(cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", methodStar, cfg.idFn(i), err)
		}
	}

	for i := 0; i < leaves; i++ {
		if err := emit(g, &cfg, methodStar, CenterNodeID, cfg.idFn(i)); err != nil {
			return nil, err
		}
	}

	return g, nil
}
