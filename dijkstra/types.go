// Package dijkstra defines result types, configuration options and
// sentinel errors for the single-destination shortest-path search.
//
// Options:
//
//	– MaxWeight:           cap on explored labels; nodes beyond it stay unreached.
//	– ImpassableThreshold: edges with Weight ≥ this value are treated as walls.
//	– DuplicateEdgePolicy: how parallel (from,to) edges are resolved when the
//	  raw distance of the final path is recomputed.
//
// Errors (sentinel):
//
//	– ErrEmptySource / ErrEmptyTarget for empty node ID arguments.
//	– ErrNilGraph for a nil graph pointer.
//	– ErrUnweightedGraph when the graph lacks the weighted capability.
//	– ErrNegativeWeight when any edge weight is below zero.
//	– ErrBadMaxWeight / ErrBadImpassableThreshold for invalid option values.
package dijkstra

import (
	"errors"
	"math"

	"github.com/walkroute/flowpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrEmptyTarget indicates that the provided target node ID is empty.
	ErrEmptyTarget = errors.New("dijkstra: target node ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph has not been through a
	// flowweight pass (or otherwise marked weighted); Dijkstra requires
	// edges carrying routing weights.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxWeight indicates that MaxWeight was set to a negative or NaN
	// value, which is not meaningful for a cost threshold.
	ErrBadMaxWeight = errors.New("dijkstra: MaxWeight must be non-negative")

	// ErrBadImpassableThreshold indicates that ImpassableThreshold was set to
	// zero, negative or NaN, which would treat every edge as a wall.
	ErrBadImpassableThreshold = errors.New("dijkstra: ImpassableThreshold must be positive")
)

// DuplicateEdgePolicy selects which of several parallel (from,to) edges
// supplies the Distance term when the raw distance of the final path is
// recomputed. Relaxation is unaffected: every parallel edge relaxes, so
// the cheapest weight always wins the route itself.
type DuplicateEdgePolicy int

const (
	// MinDistance uses the minimum Distance among parallel edges.
	// This is the default: the route was chosen by minimum weight, and the
	// shortest physical duplicate is the defensible reading of its length.
	MinDistance DuplicateEdgePolicy = iota

	// FirstMatch uses the parallel edge with the lexicographically lowest
	// edge ID. IDs order lexicographically, not numerically ("e10" < "e2"),
	// so this coincides with insertion order only below ten parallel edges
	// per pair. Provided for behavioral parity with systems that resolve
	// duplicates by list position.
	FirstMatch
)

// Result is the outcome of one shortest-path query.
//
// For an unreachable (or missing) target the canonical no-route values
// are: empty Path and PathNodes, TotalWeight = +Inf, TotalDistance = 0.
type Result struct {
	// Path is the ordered node-ID sequence from source to target inclusive.
	// Empty when no route exists.
	Path []string

	// PathNodes carries the full node records corresponding to Path.
	PathNodes []*core.Node

	// TotalWeight is the accumulated routing weight of Path,
	// +Inf when no route exists.
	TotalWeight float64

	// TotalDistance is the raw physical length of Path, recomputed from
	// edge Distance fields after reconstruction; 0 when no route exists.
	TotalDistance float64
}

// Reachable reports whether a route was found.
func (r *Result) Reachable() bool {
	return !math.IsInf(r.TotalWeight, 1)
}

// Options configures the behavior of the Dijkstra search.
//
// MaxWeight           – labels above this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// ImpassableThreshold – edges with Weight ≥ this value are skipped.
//
//	Must be > 0. Default is +Inf (no walls).
//
// DupPolicy           – parallel-edge resolution for the distance sum.
//
//	Default is MinDistance.
type Options struct {
	MaxWeight           float64             // Maximum label to explore
	ImpassableThreshold float64             // Weight threshold above which edges are non-traversable
	DupPolicy           DuplicateEdgePolicy // Parallel-edge resolution for TotalDistance
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxWeight sets a maximum routing-weight threshold. Nodes whose
// label would exceed this value are not explored.
// Must pass a non-negative, non-NaN value; violations panic with
// ErrBadMaxWeight (option constructors fail fast on programmer error).
func WithMaxWeight(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxWeight.Error())
	}

	return func(o *Options) {
		o.MaxWeight = max
	}
}

// WithImpassableThreshold defines a weight threshold above which edges
// are considered non-traversable (construction sites, closed passages).
// Edges with Weight ≥ threshold are skipped entirely.
// Must pass a positive, non-NaN value; violations panic with
// ErrBadImpassableThreshold.
func WithImpassableThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadImpassableThreshold.Error())
	}

	return func(o *Options) {
		o.ImpassableThreshold = threshold
	}
}

// WithDuplicateEdgePolicy selects the parallel-edge resolution used when
// the raw distance of the final path is recomputed.
func WithDuplicateEdgePolicy(p DuplicateEdgePolicy) Option {
	return func(o *Options) {
		o.DupPolicy = p
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - MaxWeight:           +Inf (no cap; explore all reachable).
//   - ImpassableThreshold: +Inf (no edges treated as impassable).
//   - DupPolicy:           MinDistance.
func DefaultOptions() Options {
	return Options{
		MaxWeight:           math.Inf(1),
		ImpassableThreshold: math.Inf(1),
		DupPolicy:           MinDistance,
	}
}
