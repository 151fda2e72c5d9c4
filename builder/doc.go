// Package builder provides reusable “functional‐options”‐style building blocks
// for graph construction. It lives alongside the core package to centralize
// common configuration, ID schemes, weight distributions,
// and validation logic, keeping implementations DRY, testable, and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID‐scheme, weight function, etc.
//   - Vertex‐ID scheme (IDFn implementation):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//   - Edge‐weight distribution (WeightFn implementation):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//   - Validation helpers:
//     – validateMin:       ensure integer ≥ minimum.
//     – validatePartition: ensure bipartition sizes ≥1.
//     – validateProbability: ensure p ∈ [0.0,1.0].
//   - Shared constants:
//     – MinCycleNodes, MinPathNodes, MinStarNodes, MinWheelNodes.
//     – DefaultEdgeWeight, MinProbability, MaxProbability.
//     – MethodCycle, MethodPath, … tokens that prefix constructor error messages.
//
// Guarantees:
//
//   - Idempotent vertex insertion: re-running the same builder on g adds no duplicate
//     vertices. Edges are not deduplicated: on a simple graph a repeated edge fails
//     with core.ErrMultiEdgeNotAllowed, and on a multigraph it is added again.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors for invalid build parameters: constructors return
//     fmt.Errorf("<Method>: …: %w", sentinel), so errors.Is matches the sentinel.
//   - Documented algorithmic complexity (O(n), O(n²), O(V+E), etc.) per constructor.
//   - Fully testable: IDFn, WeightFn, BuilderOption, and validation branches
//     are covered by unit tests alongside each file.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
