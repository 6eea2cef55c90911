// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Constructors attach context using `%w` wrapping.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, leaves) is smaller
// than the allowed minimum for the requested topology.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrBadDimensions indicates that grid dimensions are non-positive or
// describe a degenerate single-node lattice.
// Usage: if errors.Is(err, ErrBadDimensions) { /* fix rows/cols */ }.
var ErrBadDimensions = errors.New("builder: invalid grid dimensions")
