// helpers.go — shared emission logic for all topology constructors.

package builder

import (
	"fmt"

	"github.com/walkroute/flowpath/core"
)

// emit adds the from→to walkway with a freshly generated distance and
// flow profile, plus the reverse direction when two-way mode is on.
// Each direction draws its own distance/profile so seeded runs stay
// deterministic regardless of topology.
func emit(g *core.Graph, cfg *builderConfig, method, from, to string) error {
	if err := emitOne(g, cfg, method, from, to); err != nil {
		return err
	}
	if cfg.twoWay {
		return emitOne(g, cfg, method, to, from)
	}

	return nil
}

// emitOne adds a single directed walkway.
func emitOne(g *core.Graph, cfg *builderConfig, method, from, to string) error {
	var opts []core.EdgeOption
	if profile := cfg.flowProfile(); profile != nil {
		opts = append(opts, core.WithFlowProfile(profile))
	}
	if _, err := g.AddEdge(from, to, cfg.distFn(cfg.rng), opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, from, to, err)
	}

	return nil
}
