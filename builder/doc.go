// Package builder provides deterministic constructors for synthetic
// pedestrian street networks, used throughout tests, benchmarks and
// examples — and handy for demos of your own.
//
// Topologies:
//
//   - Corridor(n): a chain of n nodes, the shape of a shopping street.
//   - Grid(rows, cols): a lattice of one-way walkways going right and down.
//   - Star(leaves): a central plaza with spokes to surrounding nodes.
//
// Every constructor returns a raw *core.Graph (no weights yet); run
// flowweight.Apply on the result to obtain a routable graph.
//
// Configuration is functional:
//
//   - WithSeed / WithRand pin the RNG for reproducible flow profiles.
//   - WithDistance / WithDistanceFn control segment lengths.
//   - WithFlowFn(period, fn) attaches a coefficient generator per period.
//   - WithTwoWay() emits both directions of every walkway.
//   - WithIDScheme customizes node labels.
//
// Contract (strict):
//
//   - Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic at runtime and return only
//     sentinel errors (ErrTooFewNodes, ErrBadDimensions).
//   - Node insertion and edge emission orders are deterministic, and so
//     are generated coefficients for a fixed seed.
package builder
