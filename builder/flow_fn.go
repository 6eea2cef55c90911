// flow_fn.go — generators for per-period pedestrian-flow coefficients.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/walkroute/flowpath/flowweight"
)

// FlowFn produces a flow coefficient given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration.
type FlowFn func(rng *rand.Rand) float64

// DefaultFlowFn always returns flowweight.DefaultCoefficient, matching
// what an edge with no recorded coefficient would be routed with anyway.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultFlowFn(_ *rand.Rand) float64 {
	return flowweight.DefaultCoefficient
}

// ConstantFlowFn returns a FlowFn that always yields the provided value.
// Panics if value < 0.
// Complexity: O(1) time, O(1) space.
func ConstantFlowFn(value float64) FlowFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantFlowFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformFlowFn returns a FlowFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields flowweight.DefaultCoefficient as the deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformFlowFn(min, max float64) FlowFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformFlowFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return flowweight.DefaultCoefficient
		}
		if max == min {
			// Degenerate interval: constant
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// CommuteFlowFn returns a FlowFn for the given period shaped like a city
// commute: rush-hour periods carry the full peak coefficient, noon half
// of it, weekends a quarter. Unknown period labels get the default.
// Panics if peak < 0.
// Complexity: O(1) time, O(1) space.
func CommuteFlowFn(period string, peak float64) FlowFn {
	if peak < 0 {
		panic(fmt.Sprintf("CommuteFlowFn: peak must be ≥ 0, got %g", peak))
	}

	var coeff float64
	switch period {
	case flowweight.PeriodMorning, flowweight.PeriodEvening:
		coeff = peak
	case flowweight.PeriodNoon:
		coeff = peak / 2
	case flowweight.PeriodWeekend:
		coeff = peak / 4
	default:
		coeff = flowweight.DefaultCoefficient
	}

	return func(_ *rand.Rand) float64 {
		return coeff
	}
}
