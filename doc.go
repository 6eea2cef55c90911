// Package flowpath computes shortest walking routes on small street
// networks where edge cost depends on pedestrian congestion that varies
// by time of day.
//
// 🚶 What is flowpath?
//
//	An in-memory, thread-safe routing toolkit built from three pieces:
//		• Core primitives: nodes, directed edges with per-period flow
//		  coefficients, safe mutation under locks
//		• Weight initializer: derive a period-specific weighted graph,
//		  weight = distance × (1 + flowCoefficient)
//		• Shortest paths: early-exit Dijkstra with path reconstruction
//		  and both weighted-cost and raw-distance totals
//
// ✨ Why choose flowpath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure computation – no I/O, no hidden global state, safe for
//     concurrent callers with independent graphs
//   - Deterministic – stable iteration orders and a documented
//     lowest-ID tie-break in the search
//   - Extensible – functional options everywhere; bring your own
//     period labels and flow profiles
//
// Everything is organized under four subpackages:
//
//	core/       — fundamental Graph, Node, Edge types & thread-safe primitives
//	flowweight/ — per-period edge weight initialization
//	dijkstra/   — single-destination shortest-path search
//	builder/    — deterministic street-network constructors for tests & demos
//
// Quick ASCII example:
//
//	    [1]──10──[2]──5──[3]
//
//	a two-segment morning commute; with coefficients 0.5 and 0.1 the
//	weighted route 1→2→3 costs 15 + 5.5 = 20.5 over 15 raw meters.
//
// Dive into examples/ for full end-to-end scenarios.
//
//	go get github.com/walkroute/flowpath
package flowpath
