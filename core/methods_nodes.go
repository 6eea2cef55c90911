// File: methods_nodes.go
// Role: Node lifecycle and query APIs (AddNode, HasNode, Node, Nodes, NodesMap, NodeCount).
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Mutators take the node write lock; queries take read locks.

package core

import "sort"

// AddNode inserts a node with the given id into the Graph.
//
// Behavior:
//   - Empty id → ErrEmptyNodeID.
//   - Existing id → no-op (idempotent), nil error.
//   - New id → node created with an empty Attrs map and an adjacency bucket.
//
// Complexity: O(1)
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, ok := g.nodes[id]; ok {
		return nil // idempotent insert
	}
	g.nodes[id] = &Node{ID: id, Attrs: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	g.ensureAdj(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasNode reports whether a node with the given id exists.
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns the live *Node record for id.
//
// The returned pointer references the catalog entry: Attrs may be
// populated by the caller, but ID must be treated as immutable.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrNodeNotFound if the node does not exist.
//
// Complexity: O(1)
func (g *Graph) Node(id string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// Nodes returns all node IDs sorted lexicographically ascending.
// Complexity: O(V log V)
func (g *Graph) Nodes() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// NodesMap returns a shallow copy of the node catalog (ID → *Node).
// The map itself is fresh; the *Node pointers reference live records.
// Complexity: O(V)
func (g *Graph) NodesMap() map[string]*Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make(map[string]*Node, len(g.nodes))
	for id, n := range g.nodes {
		out[id] = n
	}

	return out
}

// NodeCount returns the number of nodes in the Graph.
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// ensureAdj guarantees an adjacency bucket exists for id.
// Caller must hold muEdgeAdj write lock.
func (g *Graph) ensureAdj(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}
