// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and nodes,
// but no edges. Extra options are applied on top of the copied flags, so
// derived graphs can gain capabilities (e.g. WithWeighted for a
// flowweight pass).
//
// Node records are duplicated and their Attrs maps copied into fresh
// containers (values are shallow), so the clone shares no mutable
// containers with the source.
//
// Complexity: O(V) to copy nodes and initialize adjacency.
func (g *Graph) CloneEmpty(extra ...GraphOption) *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	// Copy configuration via options
	var opts []GraphOption
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	opts = append(opts, extra...)
	clone := NewGraph(opts...)

	// Preserve the textual edge ID sequence to avoid collisions on future AddEdge.
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	// Copy nodes with fresh Attrs containers.
	for id, n := range g.nodes {
		attrs := make(map[string]interface{}, len(n.Attrs))
		for k, v := range n.Attrs {
			attrs[k] = v
		}
		clone.nodes[id] = &Node{ID: n.ID, Attrs: attrs}
		clone.adjacency[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, nodes, edges,
// flow coefficient maps, and adjacency. Extra options behave as in
// CloneEmpty.
//
// Complexity: O(V + E)
func (g *Graph) Clone(extra ...GraphOption) *Graph {
	clone := g.CloneEmpty(extra...)
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	// Copy edges and adjacency
	var ok bool
	for eid, e := range g.edges {
		flow := make(map[string]float64, len(e.Flow))
		for period, coeff := range e.Flow {
			flow[period] = coeff
		}
		clone.edges[eid] = &Edge{
			ID:       eid,
			From:     e.From,
			To:       e.To,
			Distance: e.Distance,
			Flow:     flow,
			Weight:   e.Weight,
		}
		if _, ok = clone.adjacency[e.From][e.To]; !ok {
			clone.adjacency[e.From][e.To] = make(map[string]struct{})
		}
		clone.adjacency[e.From][e.To][eid] = struct{}{}
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
//
// Behavior:
//   - Reinitializes node/edge/adjacency maps.
//   - Resets nextEdgeID to 0 (textual edge IDs will resume from "e1").
//   - Weighted/Multi/Loops flags are preserved.
//
// Complexity: O(1) for map reallocation; no iteration over existing entries.
// Concurrency: acquires both write locks; not safe to call concurrently with readers.
func (g *Graph) Clear() {
	g.muNode.Lock()
	g.muEdgeAdj.Lock()
	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muNode.Unlock()
}
