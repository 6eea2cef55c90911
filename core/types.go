// Package core defines the central Graph, Node, and Edge types for
// pedestrian street networks, and provides thread-safe primitives for
// building, querying, and cloning them.
//
// All core APIs use separate sync.RWMutex locks internally (muNode for
// nodes, muEdgeAdj for edges and adjacency), so you can safely mutate
// your graphs across goroutines with minimal contention.
//
// This file declares Node, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID         - node ID is the empty string.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrNegativeDistance    - edge distance below zero.
//	ErrNegativeFlow        - flow coefficient below zero.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeDistance indicates an edge was given a distance below zero.
	ErrNegativeDistance = errors.New("core: negative edge distance")

	// ErrNegativeFlow indicates a flow coefficient below zero was supplied.
	ErrNegativeFlow = errors.New("core: negative flow coefficient")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Node represents an intersection or point of interest in the network.
//
// ID uniquely identifies this Node within its Graph.
// Attrs stores arbitrary descriptive data (street names, coordinates,
// amenity tags). It is opaque to all algorithms.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Attrs stores arbitrary user data. Clone and CloneEmpty copy the map
	// into a fresh container; the values themselves are shared.
	Attrs map[string]interface{}
}

// Edge represents a directed walkway segment between two nodes.
//
// Each Edge has a unique ID, endpoints From→To, a non-negative physical
// Distance, a per-period pedestrian-flow coefficient map, and a Weight
// that stays zero until a flowweight pass fills it in.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Distance is the physical length of the segment (non-negative).
	Distance float64

	// Flow maps a time-period label to a congestion coefficient (≥ 0).
	// Periods absent from the map fall back to the flowweight default.
	Flow map[string]float64

	// Weight is the combined routing cost distance*(1+coefficient).
	// Meaningful only on graphs marked weighted; zero otherwise.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted marks the Graph as carrying routing weights on its edges.
// The dijkstra package refuses graphs without this capability.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same node pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithFlow sets the flow coefficient for a single time period on this edge.
// Negative coefficients are rejected by AddEdge with ErrNegativeFlow.
func WithFlow(period string, coeff float64) EdgeOption {
	return func(e *Edge) {
		if e.Flow == nil {
			e.Flow = make(map[string]float64, 1)
		}
		e.Flow[period] = coeff
	}
}

// WithFlowProfile copies an entire period→coefficient map onto this edge.
// The map is copied, never aliased, so callers may reuse their profile.
func WithFlowProfile(profile map[string]float64) EdgeOption {
	return func(e *Edge) {
		if e.Flow == nil {
			e.Flow = make(map[string]float64, len(profile))
		}
		for period, coeff := range profile {
			e.Flow[period] = coeff
		}
	}
}

// Graph is the core in-memory street network.
//
// It supports weighted vs. raw graphs, parallel edges (multi-edges) and
// self-loops. All edges are directed: a walkway from A to B does not
// imply one from B to A (add both if the street is two-way).
// muNode protects the node catalog; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muNode    sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	weighted   bool // edges carry routing weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64           // atomic edge ID generator
	nodes      map[string]*Node // node ID → Node
	edges      map[string]*Edge // edge ID → Edge

	// adjacency[from][to][edgeID] = struct{}{}
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, a Graph is unweighted, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether edges of this Graph carry routing weights.
func (g *Graph) Weighted() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.weighted
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.allowLoops
}
