// config.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     topology constructors themselves never panic at runtime.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"
	"strconv"
)

// DefaultSegmentLength is the distance assigned to every walkway when no
// custom distance policy is provided, in the same (arbitrary) unit as
// core.Edge.Distance.
const DefaultSegmentLength float64 = 100

// CenterNodeID is the identifier of the hub node in Star topologies,
// keeping tests and debugging output consistent.
const CenterNodeID = "Center"

// builderConfig carries the resolved construction policy.
type builderConfig struct {
	rng     *rand.Rand               // optional RNG for stochastic policies
	idFn    func(int) string         // deterministic node ID generator
	distFn  func(*rand.Rand) float64 // per-edge distance generator
	flowFns map[string]FlowFn        // period label → coefficient generator
	twoWay  bool                     // emit both directions of each walkway
}

// newConfig resolves defaults and applies the caller's options in order.
func newConfig(opts []BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    strconv.Itoa,
		distFn:  func(*rand.Rand) float64 { return DefaultSegmentLength },
		flowFns: make(map[string]FlowFn),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// flowProfile evaluates every configured FlowFn once, producing the
// period→coefficient map for a single edge.
func (c *builderConfig) flowProfile() map[string]float64 {
	if len(c.flowFns) == 0 {
		return nil
	}
	profile := make(map[string]float64, len(c.flowFns))
	for period, fn := range c.flowFns {
		profile[period] = fn(c.rng)
	}

	return profile
}

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic node ID generator: idx -> string.
// Panics on nil to surface programmer error early.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic flow/distance policies.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDistance fixes every walkway to the given physical length.
// Panics if length < 0.
// Complexity: O(1) time, O(1) space.
func WithDistance(length float64) BuilderOption {
	if length < 0 {
		panic("builder: WithDistance(negative)")
	}

	return func(c *builderConfig) {
		c.distFn = func(*rand.Rand) float64 { return length }
	}
}

// WithDistanceFn overrides the per-edge distance generator. The function
// receives the (possibly nil) RNG and must be pure w.r.t. its state to
// preserve determinism. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithDistanceFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithDistanceFn(nil)")
	}

	return func(c *builderConfig) {
		c.distFn = fn
	}
}

// WithFlowFn attaches a flow-coefficient generator for one time period.
// Every emitted edge gets profile[period] = fn(rng). Panics on nil fn.
// Complexity: O(1) time, O(1) space.
func WithFlowFn(period string, fn FlowFn) BuilderOption {
	if fn == nil {
		panic("builder: WithFlowFn(nil)")
	}

	return func(c *builderConfig) {
		c.flowFns[period] = fn
	}
}

// WithTwoWay emits both directions of every walkway, modelling streets
// walkable either way. Distances and flow profiles are generated per
// direction, so a seeded RNG still yields deterministic results.
func WithTwoWay() BuilderOption {
	return func(c *builderConfig) {
		c.twoWay = true
	}
}
