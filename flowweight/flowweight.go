package flowweight

import "github.com/walkroute/flowpath/core"

// DefaultCoefficient is the pedestrian-flow coefficient assumed for any
// edge that has no entry for the requested time period.
const DefaultCoefficient = 0.2

// Canonical time-period labels. They are conventions, not an enum: every
// API in this module accepts arbitrary period strings.
const (
	// PeriodMorning labels the morning rush window.
	PeriodMorning = "morning"

	// PeriodNoon labels the midday window.
	PeriodNoon = "noon"

	// PeriodEvening labels the evening rush window.
	PeriodEvening = "evening"

	// PeriodWeekend labels weekend traffic as a whole.
	PeriodWeekend = "weekend"
)

// Coefficient returns the flow coefficient of e for the given period,
// falling back to DefaultCoefficient when the period is absent.
// A nil edge yields the default as well.
// Complexity: O(1)
func Coefficient(e *core.Edge, period string) float64 {
	if e == nil {
		return DefaultCoefficient
	}
	if coeff, ok := e.Flow[period]; ok {
		return coeff
	}

	return DefaultCoefficient
}

// Weight combines a physical distance with a flow coefficient into the
// routing cost distance × (1 + coefficient).
// Complexity: O(1)
func Weight(distance, coeff float64) float64 {
	return distance * (1 + coeff)
}

// Apply returns a weighted deep copy of g for the given time period.
//
// Semantics:
//
//  1. The input graph is cloned structurally (nodes, edges, flow maps,
//     adjacency all copied into new containers) and marked weighted.
//  2. Each cloned edge gains Weight = Distance × (1 + Coefficient(e, period)).
//  3. The input graph is never mutated; calling Apply twice with the
//     same arguments yields structurally identical results.
//
// Apply never fails: unknown periods simply default every coefficient,
// and Apply(nil, period) returns nil.
//
// Complexity: O(V + E)
func Apply(g *core.Graph, period string) *core.Graph {
	if g == nil {
		return nil
	}

	weighted := g.Clone(core.WithWeighted())
	for _, e := range weighted.Edges() {
		e.Weight = Weight(e.Distance, Coefficient(e, period))
	}

	return weighted
}
