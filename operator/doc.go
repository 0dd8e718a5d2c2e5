// Package operator implements the matrix-free linear operator core.
//
// The operator package provides:
//
//   - Operator[T], one immutable value representing "multiply by A" over
//     float64 or complex128, regardless of how A is backed.
//   - New, the canonical factory taking scaled-accumulating callbacks of
//     the form dst ← α·(A·src) + β·dst.
//   - NewFromMul, the factory for plain dst ← A·src callbacks, adapted to
//     the generalized contract through a scratch arena.
//   - Apply / ApplyTranspose / ApplyAdjoint with symmetry-aware fallback:
//     a symmetric operator answers transpose applies with its forward
//     callback, a Hermitian one answers adjoint applies, and over the
//     reals the two classes coincide.
//
// Construction is deliberately permissive: dimensions, symmetry claims and
// the declared element type are caller contracts, not runtime-enforced
// invariants. Misuse surfaces downstream — a backend kernel panic on shape
// mismatch, or a sentinel error when a direction was never provided.
// Opt-in dimension assertions are available through WithChecks.
//
// Operators are immutable after construction; concurrent applies are safe
// as long as the backing data and the configured arena are.
package operator
