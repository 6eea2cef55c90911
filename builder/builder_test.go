package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/walkroute/flowpath/builder"
	"github.com/walkroute/flowpath/core"
	"github.com/walkroute/flowpath/flowweight"
)

func TestCorridor_Validation(t *testing.T) {
	_, err := builder.Corridor(1)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestCorridor_Shape(t *testing.T) {
	g, err := builder.Corridor(4)
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 3, g.EdgeCount())

	// One-way by default: 0→1 exists, 1→0 does not.
	require.True(t, g.HasEdge("0", "1"))
	require.False(t, g.HasEdge("1", "0"))

	for _, e := range g.Edges() {
		require.Equal(t, builder.DefaultSegmentLength, e.Distance)
	}
}

func TestCorridor_TwoWayAndDistance(t *testing.T) {
	g, err := builder.Corridor(3, builder.WithTwoWay(), builder.WithDistance(25))
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())
	require.True(t, g.HasEdge("1", "0"))
	require.Equal(t, 25.0, g.Edges()[0].Distance)
}

func TestCorridor_FlowProfiles(t *testing.T) {
	g, err := builder.Corridor(3,
		builder.WithFlowFn(flowweight.PeriodMorning, builder.ConstantFlowFn(0.8)),
		builder.WithFlowFn(flowweight.PeriodWeekend, builder.ConstantFlowFn(0.1)),
	)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		require.Equal(t, 0.8, e.Flow[flowweight.PeriodMorning])
		require.Equal(t, 0.1, e.Flow[flowweight.PeriodWeekend])
	}
}

func TestCorridor_SeededUniformIsReproducible(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.Corridor(5,
			builder.WithSeed(42),
			builder.WithFlowFn(flowweight.PeriodNoon, builder.UniformFlowFn(0, 1)),
		)
		require.NoError(t, err)

		return g
	}

	a, b := build(), build()
	ae, be := a.Edges(), b.Edges()
	require.Len(t, be, len(ae))
	for i := range ae {
		require.Equal(t, ae[i].Flow[flowweight.PeriodNoon], be[i].Flow[flowweight.PeriodNoon],
			"edge %s coefficients must match across seeded runs", ae[i].ID)
	}
}

func TestGrid_Validation(t *testing.T) {
	_, err := builder.Grid(0, 5)
	require.ErrorIs(t, err, builder.ErrBadDimensions)
	_, err = builder.Grid(1, 1)
	require.ErrorIs(t, err, builder.ErrBadDimensions)
}

func TestGrid_Shape(t *testing.T) {
	g, err := builder.Grid(2, 3)
	require.NoError(t, err)
	require.Equal(t, 6, g.NodeCount())
	// Rightward: 2 rows × 2 = 4; downward: 1 row gap × 3 cols = 3.
	require.Equal(t, 7, g.EdgeCount())
	require.True(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(0, 1)))
	require.True(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(1, 0)))
	require.False(t, g.HasEdge(builder.GridID(0, 1), builder.GridID(0, 0)), "one-way by default")
}

func TestStar_Shape(t *testing.T) {
	_, err := builder.Star(0)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)

	g, err := builder.Star(4, builder.WithTwoWay())
	require.NoError(t, err)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 8, g.EdgeCount())
	require.True(t, g.HasEdge(builder.CenterNodeID, "2"))
	require.True(t, g.HasEdge("2", builder.CenterNodeID))
}

func TestOptionConstructors_PanicOnMisuse(t *testing.T) {
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithDistance(-1) })
	require.Panics(t, func() { builder.ConstantFlowFn(-0.1) })
	require.Panics(t, func() { builder.UniformFlowFn(0.5, 0.2) })
	require.Panics(t, func() { builder.CommuteFlowFn(flowweight.PeriodNoon, -1) })
}

func TestCommuteFlowFn_Profile(t *testing.T) {
	cases := map[string]float64{
		flowweight.PeriodMorning: 0.8,
		flowweight.PeriodEvening: 0.8,
		flowweight.PeriodNoon:    0.4,
		flowweight.PeriodWeekend: 0.2,
		"siesta":                 flowweight.DefaultCoefficient,
	}
	for period, want := range cases {
		if got := builder.CommuteFlowFn(period, 0.8)(nil); got != want {
			t.Errorf("CommuteFlowFn(%q) = %g; want %g", period, got, want)
		}
	}
}
