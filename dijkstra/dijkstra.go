// Package dijkstra implements the early-exit, single-destination variant of
// Dijkstra's shortest-path algorithm used for pedestrian route queries.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with Weight ≥ ImpassableThreshold as an impassable "wall".
//   - We stop exploring once a finalized label exceeds MaxWeight.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Ties on the frontier are broken by lowest node ID so identical inputs always
//     finalize nodes in the same order.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/walkroute/flowpath/core"
)

// Dijkstra computes the minimum-weight route from source to target on the
// weighted graph g, stopping as soon as target is finalized. It accepts
// functional options to customize behavior (MaxWeight, ImpassableThreshold,
// DuplicateEdgePolicy).
//
// Returns:
//
//   - res: the Result; for an unreachable or missing endpoint this is the
//     canonical no-route value (empty Path, TotalWeight = +Inf,
//     TotalDistance = 0) — never an error.
//   - err: error only for structural misuse of the API.
//
// Preconditions and validation (in order):
//  1. source must be non-empty (ErrEmptySource).
//  2. target must be non-empty (ErrEmptyTarget).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must be weighted (ErrUnweightedGraph).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate arguments and graph capabilities.
	if source == "" {
		return nil, ErrEmptySource
	}
	if target == "" {
		return nil, ErrEmptyTarget
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) A missing endpoint is not a misuse: per the routing contract it is
	//    simply unreachable, so the canonical no-route result comes back.
	if !g.HasNode(source) || !g.HasNode(target) {
		return noRoute(), nil
	}

	// 5) Trivial query: the walk from a node to itself is the node alone,
	//    with zero weight and zero distance.
	if source == target {
		n, err := g.Node(source)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: lookup of %q: %w", source, err)
		}

		return &Result{
			Path:      []string{source},
			PathNodes: []*core.Node{n},
		}, nil
	}

	// 6) Prepare working tables. Let V = number of nodes.
	nodes := g.Nodes()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(nodes)),
		prev:    make(map[string]string, len(nodes)),
		visited: make(map[string]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}

	// 7) Initialize labels and run the main loop until target is finalized
	//    or the frontier is exhausted.
	r.init(source, nodes)
	if err := r.process(target); err != nil {
		return nil, err
	}

	// 8) Assemble the Result: reconstruct the path and recompute the raw
	//    distance along it.
	return r.result(source, target), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // The input graph; read-only within Dijkstra.
	options Options            // Configuration options (thresholds, duplicate policy).
	dist    map[string]float64 // Maps node ID → current best weight from source.
	prev    map[string]string  // Maps node ID → predecessor on the shortest route.
	visited map[string]bool    // Tracks if a node's label is finalized.
	pq      nodePQ             // Min-heap of *nodeItem for the lazy priority queue.
}

// init sets up initial labels, predecessors and visited flags, and pushes
// the source with label 0 into the heap.
func (r *runner) init(source string, nodes []string) {
	// 1) dist[v] = +Inf, visited[v] = false, prev[v] = "" for all nodes v.
	for _, v := range nodes {
		r.dist[v] = math.Inf(1)
		r.visited[v] = false
		r.prev[v] = "" // no predecessor yet
	}

	// 2) The label of the source is zero.
	r.dist[source] = 0

	// 3) Seed the priority queue with the source.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process is the core loop. It repeatedly finalizes the frontier node with
// the minimum label and relaxes its outgoing edges, stopping the moment
// target is finalized (early exit) — no further nodes are relaxed.
//
// Loop termination conditions:
//
//   - The target node is finalized.
//   - The heap becomes empty (no route exists).
//   - The minimum label in the heap exceeds MaxWeight.
func (r *runner) process(target string) error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-label item; ties yield the lowest node ID.
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// 2) Skip stale heap entries for already-finalized nodes.
		if r.visited[u] {
			continue
		}

		// 3) Beyond MaxWeight nothing closer remains in the heap; stop.
		if d > r.options.MaxWeight {
			break
		}

		// 4) u's label is now final.
		r.visited[u] = true

		// 5) Early exit: target finalized, its label cannot improve.
		if u == target {
			return nil
		}

		// 6) Relax all outgoing edges of u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and attempts to improve the labels of
// still-unvisited neighbors. Every parallel edge participates, so the
// cheapest duplicate always wins the relaxation.
//
// Assumes r.dist[u] is finalized before the call.
func (r *runner) relax(u string) error {
	// 1) Snapshot the outgoing edges of u (sorted by edge ID).
	out, err := r.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: out-edges of %q: %w", u, err)
	}

	// 2) Attempt relaxation along each edge.
	for _, e := range out {
		v, w := e.To, e.Weight

		// Finalized labels never improve; skip visited neighbors.
		if r.visited[v] {
			continue
		}

		// Walls: an edge at or above the threshold is not traversable.
		if w >= r.options.ImpassableThreshold {
			continue
		}

		// Defensive: the pre-scan already rejected negative weights.
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxWeight {
			continue
		}
		// Strict improvement only, to avoid churning equal-cost duplicates.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u

		// Lazy decrease-key: push a fresh entry, stale ones are skipped on pop.
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// result reconstructs the route from the predecessor chain and assembles
// the final Result, recomputing the raw distance along the path.
func (r *runner) result(source, target string) *Result {
	// 1) Unreached target → canonical no-route value.
	if math.IsInf(r.dist[target], 1) {
		return noRoute()
	}

	// 2) Walk predecessors backward from target, then reverse.
	var path []string
	for at := target; at != ""; at = r.prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	// 3) A chain that does not lead back to the source means the target was
	//    never reached from it; same canonical no-route value.
	if path[0] != source {
		return noRoute()
	}

	// 4) Resolve full node records for the path.
	nodes := make([]*core.Node, len(path))
	for i, id := range path {
		n, err := r.g.Node(id)
		if err != nil {
			// The path came out of this graph; a miss here is unreachable
			// in practice, but degrade to no-route rather than panic.
			return noRoute()
		}
		nodes[i] = n
	}

	return &Result{
		Path:          path,
		PathNodes:     nodes,
		TotalWeight:   r.dist[target],
		TotalDistance: r.pathDistance(path),
	}
}

// pathDistance recomputes the raw physical length of the path by summing,
// for each consecutive pair, the Distance of the matching edge under the
// configured DuplicateEdgePolicy. A pair with no matching edge contributes
// 0 — an inherited policy for graphs whose predecessor chain and edge list
// disagree (possible only with parallel edges of differing distance).
func (r *runner) pathDistance(path []string) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		matches := r.g.EdgesBetween(path[i-1], path[i])
		if len(matches) == 0 {
			continue // contributes 0
		}
		switch r.options.DupPolicy {
		case FirstMatch:
			total += matches[0].Distance
		default: // MinDistance
			best := matches[0].Distance
			for _, e := range matches[1:] {
				if e.Distance < best {
					best = e.Distance
				}
			}
			total += best
		}
	}

	return total
}

// noRoute returns the canonical "no route" Result: empty path, +Inf weight,
// zero distance.
func noRoute() *Result {
	return &Result{
		Path:        []string{},
		PathNodes:   []*core.Node{},
		TotalWeight: math.Inf(1),
	}
}

// nodeItem represents a node and its current label (weight from source).
// It is stored in the priority queue to order nodes by increasing label.
type nodeItem struct {
	id   string  // node ID
	dist float64 // weight from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem ordered by label
// ascending, with node ID ascending as the deterministic tie-break.
// Under the lazy decrease-key approach outdated entries remain in the heap
// and are ignored when popped (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller label → higher priority;
// equal labels resolve by lowest node ID for reproducible outcomes.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
