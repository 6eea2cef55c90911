// Package core_test verifies core.Graph method-level contracts:
// node/edge lifecycle, constraint enforcement (distances, flows, loops,
// multi-edges) and deterministic ordering of Nodes/Edges/OutEdges.
package core_test

import (
	"errors"
	"testing"

	"github.com/walkroute/flowpath/core"
)

// TestGraph_AddNodeLifecycle verifies AddNode/HasNode rules.
func TestGraph_AddNodeLifecycle(t *testing.T) {
	g := core.NewGraph()

	if err := g.AddNode(""); !errors.Is(err, core.ErrEmptyNodeID) {
		t.Fatalf("AddNode(\"\") = %v; want ErrEmptyNodeID", err)
	}
	if err := g.AddNode("A"); err != nil {
		t.Fatalf("AddNode(A) = %v; want nil", err)
	}
	if !g.HasNode("A") {
		t.Error("HasNode(A) = false after AddNode")
	}
	// Duplicate insert is an idempotent no-op.
	if err := g.AddNode("A"); err != nil {
		t.Fatalf("duplicate AddNode(A) = %v; want nil", err)
	}
	if got := g.NodeCount(); got != 1 {
		t.Errorf("NodeCount = %d; want 1", got)
	}
}

// TestGraph_NodeAccess verifies Node() sentinels and live-record semantics.
func TestGraph_NodeAccess(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("plaza")

	if _, err := g.Node(""); !errors.Is(err, core.ErrEmptyNodeID) {
		t.Fatalf("Node(\"\") = %v; want ErrEmptyNodeID", err)
	}
	if _, err := g.Node("missing"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Fatalf("Node(missing) = %v; want ErrNodeNotFound", err)
	}

	n, err := g.Node("plaza")
	if err != nil {
		t.Fatal(err)
	}
	n.Attrs["name"] = "Market Plaza"

	again, _ := g.Node("plaza")
	if again.Attrs["name"] != "Market Plaza" {
		t.Error("Node() should return the live catalog record")
	}
}

// TestGraph_AddEdgeValidation verifies the AddEdge sentinel ladder.
func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()

	if _, err := g.AddEdge("", "B", 1); !errors.Is(err, core.ErrEmptyNodeID) {
		t.Errorf("empty from: %v; want ErrEmptyNodeID", err)
	}
	if _, err := g.AddEdge("A", "B", -2); !errors.Is(err, core.ErrNegativeDistance) {
		t.Errorf("negative distance: %v; want ErrNegativeDistance", err)
	}
	if _, err := g.AddEdge("A", "A", 1); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Errorf("self-loop: %v; want ErrLoopNotAllowed", err)
	}
	if _, err := g.AddEdge("A", "B", 1, core.WithFlow("morning", -0.5)); !errors.Is(err, core.ErrNegativeFlow) {
		t.Errorf("negative flow: %v; want ErrNegativeFlow", err)
	}

	if _, err := g.AddEdge("A", "B", 1); err != nil {
		t.Fatalf("valid AddEdge: %v", err)
	}
	if _, err := g.AddEdge("A", "B", 2); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("parallel edge: %v; want ErrMultiEdgeNotAllowed", err)
	}
}

// TestGraph_AddEdgeAutoCreatesEndpoints verifies the endpoint invariant.
func TestGraph_AddEdgeAutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("X", "Y", 3.5); err != nil {
		t.Fatal(err)
	}
	if !g.HasNode("X") || !g.HasNode("Y") {
		t.Error("AddEdge must auto-create missing endpoints")
	}
	if !g.HasEdge("X", "Y") {
		t.Error("HasEdge(X,Y) = false after AddEdge")
	}
	// Edges are directed: the reverse direction does not exist.
	if g.HasEdge("Y", "X") {
		t.Error("HasEdge(Y,X) = true; edges are directed")
	}
}

// TestGraph_MultiEdgesAndLoops verifies opt-in relaxations.
func TestGraph_MultiEdgesAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())

	if _, err := g.AddEdge("A", "A", 0); err != nil {
		t.Fatalf("loop with WithLoops: %v", err)
	}
	id1, err := g.AddEdge("A", "B", 1)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := g.AddEdge("A", "B", 9)
	if err != nil {
		t.Fatalf("parallel with WithMultiEdges: %v", err)
	}
	if id1 == id2 {
		t.Errorf("edge IDs must be unique, both %q", id1)
	}

	between := g.EdgesBetween("A", "B")
	if len(between) != 2 {
		t.Fatalf("EdgesBetween(A,B) = %d edges; want 2", len(between))
	}
	if between[0].ID != id1 || between[1].ID != id2 {
		t.Errorf("EdgesBetween order = [%s %s]; want [%s %s]", between[0].ID, between[1].ID, id1, id2)
	}
}

// TestGraph_DeterministicOrdering verifies sorted Nodes and OutEdges.
func TestGraph_DeterministicOrdering(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("C", "A", 1)
	g.AddEdge("C", "B", 2)
	g.AddNode("D")

	want := []string{"A", "B", "C", "D"}
	got := g.Nodes()
	if len(got) != len(want) {
		t.Fatalf("Nodes() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Nodes() = %v; want %v", got, want)
		}
	}

	out, err := g.OutEdges("C")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].ID >= out[1].ID {
		t.Errorf("OutEdges(C) not sorted by edge ID: %v", out)
	}

	if _, err = g.OutEdges("nope"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("OutEdges(nope) = %v; want ErrNodeNotFound", err)
	}
}

// TestGraph_FlowOptions verifies WithFlow / WithFlowProfile population.
func TestGraph_FlowOptions(t *testing.T) {
	g := core.NewGraph()
	profile := map[string]float64{"morning": 0.5, "evening": 0.3}

	id, err := g.AddEdge("A", "B", 10,
		core.WithFlowProfile(profile),
		core.WithFlow("noon", 0.1),
	)
	if err != nil {
		t.Fatal(err)
	}

	e := g.EdgesBetween("A", "B")[0]
	if e.ID != id {
		t.Fatalf("EdgesBetween returned %q; want %q", e.ID, id)
	}
	if e.Flow["morning"] != 0.5 || e.Flow["evening"] != 0.3 || e.Flow["noon"] != 0.1 {
		t.Errorf("Flow map = %v", e.Flow)
	}

	// The profile map is copied, not aliased.
	profile["morning"] = 99
	if e.Flow["morning"] != 0.5 {
		t.Error("WithFlowProfile must copy the caller's map")
	}
}
