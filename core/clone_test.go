package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/walkroute/flowpath/core"
)

// TestClone_DeepCopy verifies that Clone duplicates nodes, edges, flow
// maps and attrs into independent containers.
func TestClone_DeepCopy(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "B", 4, core.WithFlow("morning", 0.5))
	require.NoError(t, err)
	n, err := g.Node("A")
	require.NoError(t, err)
	n.Attrs["name"] = "Elm St"

	clone := g.Clone()

	require.Equal(t, g.NodeCount(), clone.NodeCount())
	require.Equal(t, g.EdgeCount(), clone.EdgeCount())
	require.True(t, clone.Looped(), "configuration flags carried over")

	// Mutating the clone's edge must not leak into the source.
	ce := clone.Edges()[0]
	ce.Weight = 123
	ce.Flow["morning"] = 9
	se := g.Edges()[0]
	require.Zero(t, se.Weight, "source edge weight untouched")
	require.Equal(t, 0.5, se.Flow["morning"], "source flow map untouched")

	// Mutating the clone's node attrs must not leak either.
	cn, err := clone.Node("A")
	require.NoError(t, err)
	cn.Attrs["name"] = "Oak St"
	require.Equal(t, "A", se.From, "sanity")
	sn, err := g.Node("A")
	require.NoError(t, err)
	require.Equal(t, "Elm St", sn.Attrs["name"])
}

// TestClone_ExtraOptions verifies capability upgrades on the copy.
func TestClone_ExtraOptions(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	require.False(t, g.Weighted())

	clone := g.Clone(core.WithWeighted())
	require.True(t, clone.Weighted())
	require.False(t, g.Weighted(), "source flags unchanged")
}

// TestClone_EdgeIDSequenceCarried verifies no ID collisions after cloning.
func TestClone_EdgeIDSequenceCarried(t *testing.T) {
	g := core.NewGraph()
	first, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	clone := g.Clone()
	next, err := clone.AddEdge("B", "C", 2)
	require.NoError(t, err)
	require.NotEqual(t, first, next, "clone must continue the edge ID sequence")
}

// TestCloneEmpty_NoEdges verifies CloneEmpty keeps nodes only.
func TestCloneEmpty_NoEdges(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)

	empty := g.CloneEmpty()
	require.Equal(t, 2, empty.NodeCount())
	require.Zero(t, empty.EdgeCount())
}

// TestClear_PreservesFlags verifies Clear resets catalogs but not config.
func TestClear_PreservesFlags(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	g.AddEdge("A", "B", 1)

	g.Clear()
	require.Zero(t, g.NodeCount())
	require.Zero(t, g.EdgeCount())
	require.True(t, g.Multigraph())

	id, err := g.AddEdge("X", "Y", 1)
	require.NoError(t, err)
	require.Equal(t, "e1", id, "edge IDs resume from e1 after Clear")
}
