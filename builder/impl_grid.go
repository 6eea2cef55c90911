// impl_grid.go — implementation of the Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrBadDimensions).
//   - Node IDs are "r,c" (row-major); cfg.idFn is NOT used here because a
//     lattice needs two coordinates — use Corridor/Star for custom schemes.
//   - Emits the rightward walkway then the downward walkway of each cell,
//     scanning rows top to bottom and columns left to right.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(rows·cols) nodes + O(rows·cols) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/walkroute/flowpath/core"
)

const methodGrid = "Grid"

// GridID formats the canonical node ID of the lattice cell (row, col).
func GridID(row, col int) string {
	return fmt.Sprintf("%d,%d", row, col)
}

// Grid builds a rows×cols lattice of one-way walkways going right and
// down (both ways with WithTwoWay) and returns the raw graph.
func Grid(rows, cols int, opts ...BuilderOption) (*core.Graph, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("%s: rows=%d cols=%d: %w", methodGrid, rows, cols, ErrBadDimensions)
	}

	cfg := newConfig(opts)
	g := core.NewGraph()

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := g.AddNode(GridID(r, c)); err != nil {
				return nil, fmt.Errorf("%s: AddNode(%s): %w", methodGrid, GridID(r, c), err)
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := emit(g, &cfg, methodGrid, GridID(r, c), GridID(r, c+1)); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := emit(g, &cfg, methodGrid, GridID(r, c), GridID(r+1, c)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
