// SPDX-License-Identifier: MIT

// Package operator: functional configuration for the operator factories.
// This file defines:
//   - Option / config (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: config fields are unexported; public factories consume ...Option.
//
// Notes:
//   - Symmetry flags are caller CLAIMS, never verified against the callbacks;
//     the permissive contract is intentional and documented in doc.go.
//   - Both callback conventions can be mixed freely: a 5-argument forward
//     with a 3-argument transpose is legal; the factory adapts each slot
//     independently through the configured arena.

package operator

import "github.com/katalvlaran/linop/storage"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSymmetric: operators claim no structure unless told otherwise.
	DefaultSymmetric = false

	// DefaultHermitian mirrors DefaultSymmetric.
	DefaultHermitian = false

	// DefaultChecks keeps apply-time dimension assertions off, preserving
	// the permissive reference contract.
	DefaultChecks = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilForward   = "operator: New: forward callback must be non-nil"
	panicNilMul       = "operator: NewFromMul: mul callback must be non-nil"
	panicNilTranspose = "operator: WithTranspose: callback must be non-nil"
	panicNilAdjoint   = "operator: WithAdjoint: callback must be non-nil"
	panicNilArena     = "operator: WithArena: arena must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates the factory configuration. Safe to apply repeatedly;
// the last setting of a slot wins.
type Option[T Scalar] func(*config[T])

// config stores the effective configuration after applying Option setters.
// Unexported to prevent external mutation; factories resolve ...Option via
// gatherOptions.
type config[T Scalar] struct {
	symmetric bool
	hermitian bool
	checks    bool

	transpose ApplyFunc[T] // 5-argument transpose, used as-is
	adjoint   ApplyFunc[T] // 5-argument adjoint, used as-is

	mulTranspose MulFunc[T] // 3-argument transpose, adapted via the arena
	mulAdjoint   MulFunc[T] // 3-argument adjoint, adapted via the arena

	arena storage.Arena[T]
}

// gatherOptions resolves opts over the defaults. The arena always ends up
// non-nil: storage.Heap is the default container family.
func gatherOptions[T Scalar](opts []Option[T]) config[T] {
	cfg := config[T]{
		symmetric: DefaultSymmetric,
		hermitian: DefaultHermitian,
		checks:    DefaultChecks,
		arena:     storage.Heap[T]{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ---------- Constructors (WithX) ----------

// WithSymmetric claims A == Aᵀ. The claim is trusted, not verified; it
// unlocks the transpose→forward fallback at apply time.
func WithSymmetric[T Scalar]() Option[T] {
	return func(c *config[T]) { c.symmetric = true }
}

// WithHermitian claims A == Aᴴ. The claim is trusted, not verified; it
// unlocks the adjoint→forward fallback at apply time.
func WithHermitian[T Scalar]() Option[T] {
	return func(c *config[T]) { c.hermitian = true }
}

// WithTranspose installs a generalized transpose callback computing
// dst ← α·(Aᵀ·src) + β·dst. Panics on nil (programmer error).
func WithTranspose[T Scalar](f ApplyFunc[T]) Option[T] {
	if f == nil {
		panic(panicNilTranspose)
	}

	return func(c *config[T]) { c.transpose = f }
}

// WithAdjoint installs a generalized adjoint callback computing
// dst ← α·(Aᴴ·src) + β·dst. Panics on nil (programmer error).
func WithAdjoint[T Scalar](f ApplyFunc[T]) Option[T] {
	if f == nil {
		panic(panicNilAdjoint)
	}

	return func(c *config[T]) { c.adjoint = f }
}

// WithMulTranspose installs a plain transpose callback (dst ← Aᵀ·src);
// the factory adapts it to the generalized contract. Panics on nil.
func WithMulTranspose[T Scalar](f MulFunc[T]) Option[T] {
	if f == nil {
		panic(panicNilTranspose)
	}

	return func(c *config[T]) { c.mulTranspose = f }
}

// WithMulAdjoint installs a plain adjoint callback (dst ← Aᴴ·src);
// the factory adapts it to the generalized contract. Panics on nil.
func WithMulAdjoint[T Scalar](f MulFunc[T]) Option[T] {
	if f == nil {
		panic(panicNilAdjoint)
	}

	return func(c *config[T]) { c.mulAdjoint = f }
}

// WithArena selects the container family used for internal scratch
// vectors (adapter temporaries, synthesized kernels). Panics on nil.
func WithArena[T Scalar](a storage.Arena[T]) Option[T] {
	if a == nil {
		panic(panicNilArena)
	}

	return func(c *config[T]) { c.arena = a }
}

// WithChecks enables apply-time dimension assertions returning
// ErrDimensionMismatch. Off by default: the reference contract leaves
// shape errors to the backend kernel.
func WithChecks[T Scalar]() Option[T] {
	return func(c *config[T]) { c.checks = true }
}
