// Package flowweight derives period-specific routing weights for
// pedestrian street networks.
//
// Overview:
//
//   - Every edge of a core.Graph carries a physical Distance and a map of
//     pedestrian-flow coefficients keyed by time-period label
//     (morning, noon, evening, weekend — any string is accepted).
//   - Apply produces a deep copy of the input graph, marked weighted,
//     where each edge gains Weight = Distance × (1 + coefficient).
//   - An edge with no coefficient recorded for the requested period
//     falls back to DefaultCoefficient (0.2).
//
// Guarantees:
//
//   - Pure: same inputs always yield the same output.
//   - Never fails: missing coefficients default, unknown periods are
//     fine, and a nil input simply yields nil.
//   - Non-mutating: the input graph shares no mutable containers with
//     the returned weighted graph.
//
// Typical lifecycle: an external source supplies a raw network once; a
// weighted view is derived per query (or cached by the caller) and fed
// to the dijkstra package.
//
// Complexity: O(V + E) time and space per Apply call.
package flowweight
