package flowweight_test

import (
	"fmt"

	"github.com/walkroute/flowpath/core"
	"github.com/walkroute/flowpath/flowweight"
)

// ExampleApply shows how a raw segment turns into period-specific
// routing weights, including the default for an unrecorded period.
func ExampleApply() {
	g := core.NewGraph()
	g.AddEdge("station", "market", 10, core.WithFlow(flowweight.PeriodMorning, 0.5))

	morning := flowweight.Apply(g, flowweight.PeriodMorning)
	weekend := flowweight.Apply(g, flowweight.PeriodWeekend) // falls back to 0.2

	fmt.Printf("morning=%g weekend=%g raw=%g\n",
		morning.Edges()[0].Weight,
		weekend.Edges()[0].Weight,
		g.Edges()[0].Weight)
	// Output: morning=15 weekend=12 raw=0
}
