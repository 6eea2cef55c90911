// Package dijkstra provides a precise, single-destination implementation of
// Dijkstra's shortest-path algorithm on weighted pedestrian networks.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost route from a source node to one
//     target node in O((V + E) log V) time, where V = |nodes| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always finalize the
//     next-closest node, and stops as soon as the target is finalized
//     (early exit) instead of labelling the whole graph.
//   - The result carries the node-ID path, the full node records along it,
//     the accumulated routing weight, and the raw physical distance of the
//     same path recomputed from edge distances.
//
// When to use:
//
//   - On graphs produced by flowweight.Apply, whose edges already carry
//     Weight = Distance × (1 + flowCoefficient).
//   - On any core.Graph marked weighted whose Weight fields were filled
//     by other means; only non-negative weights are supported.
//
// Key behaviors:
//
//   - Unreachable target: never an error. The canonical no-route Result has
//     an empty Path, TotalWeight = +Inf and TotalDistance = 0; callers
//     treat math.IsInf(res.TotalWeight, 1) — or res.Reachable() — as the
//     "no route" sentinel.
//   - Missing source or target node: treated as unreachable, same sentinel.
//   - source == target: a single-node path with zero weight and distance.
//   - Tie-break: among equally distant frontier nodes the lowest node ID is
//     finalized first. The abstract contract leaves ties arbitrary; the
//     implementation pins them down so results are reproducible.
//   - Parallel edges: every parallel edge participates in relaxation (the
//     cheapest weight wins); the post-hoc distance sum resolves duplicates
//     via a configurable DuplicateEdgePolicy (minimum distance by default).
//
// Options:
//
//   - WithMaxWeight(x): nodes whose label would exceed x are not explored.
//   - WithImpassableThreshold(t): edges with Weight ≥ t are skipped.
//   - WithDuplicateEdgePolicy(p): duplicate-edge resolution for the
//     distance recomputation (MinDistance or FirstMatch).
//
// Error handling (sentinel errors, structural misuse only):
//
//   - ErrEmptySource / ErrEmptyTarget: empty node ID arguments.
//   - ErrNilGraph: nil *core.Graph.
//   - ErrUnweightedGraph: graph not marked weighted (run flowweight.Apply first).
//   - ErrNegativeWeight: a negative edge weight was detected (fast O(E) pre-scan).
//   - ErrBadMaxWeight / ErrBadImpassableThreshold: panics from option
//     constructors on meaningless values.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case; early exit typically does less.
//   - Space: O(V + E) for labels, predecessors and the lazy heap.
package dijkstra
