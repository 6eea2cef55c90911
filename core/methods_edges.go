// File: methods_edges.go
// Role: Edge lifecycle and query APIs (AddEdge, HasEdge, EdgesBetween, OutEdges, Edges, EdgeCount).
// Determinism:
//   - Edge IDs are textual and monotonic: "e1", "e2", ... from an atomic counter.
//   - OutEdges/EdgesBetween/Edges sort results by Edge.ID ascending, which
//     coincides with insertion order for same-length IDs and is stable per graph.
// Concurrency:
//   - AddEdge acquires muNode then muEdgeAdj (the same order as every mutator)
//     so endpoint creation and adjacency update observe a consistent snapshot.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// AddEdge inserts a directed edge from → to with the given physical
// distance and returns the generated edge ID.
//
// Missing endpoints are created automatically, which keeps the
// "every edge endpoint resolves to a node" invariant true by construction.
//
// Validation (in order):
//  1. from and to must be non-empty (ErrEmptyNodeID).
//  2. distance must be ≥ 0 (ErrNegativeDistance).
//  3. from == to requires WithLoops (ErrLoopNotAllowed).
//  4. Every flow coefficient set via options must be ≥ 0 (ErrNegativeFlow).
//  5. An existing from→to edge requires WithMultiEdges (ErrMultiEdgeNotAllowed).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, distance float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if distance < 0 {
		return "", fmt.Errorf("%w: %s→%s distance=%g", ErrNegativeDistance, from, to, distance)
	}

	e := &Edge{From: from, To: to, Distance: distance}
	for _, opt := range opts {
		opt(e)
	}
	for period, coeff := range e.Flow {
		if coeff < 0 {
			return "", fmt.Errorf("%w: %s→%s period=%q coeff=%g", ErrNegativeFlow, from, to, period, coeff)
		}
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	// Auto-create missing endpoints inline (AddNode would re-acquire muNode).
	for _, id := range [2]string{from, to} {
		if _, ok := g.nodes[id]; !ok {
			g.nodes[id] = &Node{ID: id, Attrs: make(map[string]interface{})}
		}
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.ensureAdj(from)
	g.ensureAdj(to)

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}

	e.ID = g.newEdgeID()
	g.edges[e.ID] = e
	if _, ok := g.adjacency[from][to]; !ok {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][e.ID] = struct{}{}

	return e.ID, nil
}

// newEdgeID produces the next textual edge identifier ("e1", "e2", ...).
func (g *Graph) newEdgeID() string {
	return fmt.Sprintf("e%d", atomic.AddUint64(&g.nextEdgeID, 1))
}

// HasEdge reports whether at least one from→to edge exists.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// EdgesBetween returns every from→to edge, sorted by Edge.ID ascending.
// The result is empty (not an error) when no such edge exists.
// Complexity: O(k log k) where k is the number of parallel edges.
func (g *Graph) EdgesBetween(from, to string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for eid := range g.adjacency[from][to] {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out
}

// OutEdges returns all edges leaving the given node, sorted by Edge.ID
// ascending. The returned pointers reference live catalog edges; treat
// them as read-only.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrNodeNotFound if the node does not exist.
//
// Complexity: O(d log d) where d is the out-degree of id.
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	// Lock order mirrors mutators (muNode → muEdgeAdj) so the node cannot
	// disappear between validation and adjacency snapshotting.
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sortEdges(out)

	return out, nil
}

// Edges returns every edge in the Graph, sorted by Edge.ID ascending.
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of edges in the Graph.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// sortEdges orders a slice of edges by ID ascending for reproducible iteration.
func sortEdges(out []*Edge) {
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
}
