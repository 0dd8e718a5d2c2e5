// SPDX-License-Identifier: MIT

// Package operator: the Operator type, factories and the apply contract.
//
// Purpose:
//   - Reconcile three independent axes — backing representation, symmetry
//     class, calling convention — into one immutable value that downstream
//     solvers drive through Apply/ApplyTranspose/ApplyAdjoint alone.
//
// Behavior highlights:
//   - Construction is pure value assembly: no validation of dimensions,
//     flags or callback behavior (caller contract, documented in doc.go).
//   - Direction resolution is fixed and documented: explicit callback →
//     symmetry fallback → sentinel error. Missing directions fail loudly,
//     never silently no-op.
//
// Errors:
//   - ErrNoTranspose, ErrNoAdjoint on unresolvable directions.
//   - ErrDimensionMismatch under WithChecks only.

package operator

import "github.com/katalvlaran/linop/storage"

// Operator is a matrix-free linear operator mapping length-cols vectors to
// length-rows vectors over T. It owns nothing but its callbacks and scalar
// metadata; matrix-backed operators close over the caller's matrix and see
// its mutations. Immutable after construction.
type Operator[T Scalar] struct {
	rows, cols int

	symmetric bool
	hermitian bool
	checks    bool

	forward   ApplyFunc[T]
	transpose ApplyFunc[T] // nil when absent; resolution may fall back
	adjoint   ApplyFunc[T] // nil when absent; resolution may fall back

	arena storage.Arena[T]
}

// New is the canonical factory: a generalized forward callback plus
// options. rows and cols are trusted as given (non-negative by caller
// contract). The only construction-time failure is a nil forward, which
// panics as a programmer error.
func New[T Scalar](rows, cols int, forward ApplyFunc[T], opts ...Option[T]) *Operator[T] {
	if forward == nil {
		panic(panicNilForward)
	}

	return assemble(rows, cols, forward, gatherOptions(opts))
}

// NewFromMul builds an operator from a plain product callback
// (dst ← A·src), adapting it to the generalized contract through the
// configured arena. Panics on nil mul (programmer error).
func NewFromMul[T Scalar](rows, cols int, mul MulFunc[T], opts ...Option[T]) *Operator[T] {
	if mul == nil {
		panic(panicNilMul)
	}
	cfg := gatherOptions(opts)

	return assemble(rows, cols, generalize(rows, mul, cfg.arena), cfg)
}

// assemble converges both factories on the single canonical
// representation. Plain transpose/adjoint callbacks are adapted here;
// their scratch is sized to cols, the output dimension of Aᵀ and Aᴴ.
func assemble[T Scalar](rows, cols int, forward ApplyFunc[T], cfg config[T]) *Operator[T] {
	op := &Operator[T]{
		rows:      rows,
		cols:      cols,
		symmetric: cfg.symmetric,
		hermitian: cfg.hermitian,
		checks:    cfg.checks,
		forward:   forward,
		transpose: cfg.transpose,
		adjoint:   cfg.adjoint,
		arena:     cfg.arena,
	}
	if op.transpose == nil && cfg.mulTranspose != nil {
		op.transpose = generalize(cols, cfg.mulTranspose, cfg.arena)
	}
	if op.adjoint == nil && cfg.mulAdjoint != nil {
		op.adjoint = generalize(cols, cfg.mulAdjoint, cfg.arena)
	}

	return op
}

// Dims returns the operator's output and input dimensionality.
func (op *Operator[T]) Dims() (rows, cols int) { return op.rows, op.cols }

// Rows returns the output dimensionality.
func (op *Operator[T]) Rows() int { return op.rows }

// Cols returns the input dimensionality.
func (op *Operator[T]) Cols() int { return op.cols }

// Symmetric reports the caller's A == Aᵀ claim.
func (op *Operator[T]) Symmetric() bool { return op.symmetric }

// Hermitian reports the caller's A == Aᴴ claim.
func (op *Operator[T]) Hermitian() bool { return op.hermitian }

// Arena returns the container family backing the operator's scratch
// vectors. Bridges use it to draw temporaries for synthesized kernels.
func (op *Operator[T]) Arena() storage.Arena[T] { return op.arena }

// CanTranspose reports whether ApplyTranspose can succeed, either through
// an explicit callback or a symmetry fallback.
func (op *Operator[T]) CanTranspose() bool { return op.resolveTranspose() != nil }

// CanAdjoint reports whether ApplyAdjoint can succeed.
func (op *Operator[T]) CanAdjoint() bool { return op.resolveAdjoint() != nil }

// resolveTranspose picks the callback answering Aᵀ·src.
// Order: explicit → symmetric (Aᵀ = A) → Hermitian over the reals
// (Aᴴ = Aᵀ = A) → nil.
func (op *Operator[T]) resolveTranspose() ApplyFunc[T] {
	switch {
	case op.transpose != nil:
		return op.transpose
	case op.symmetric:
		return op.forward
	case op.hermitian && !IsComplex[T]():
		return op.forward
	default:
		return nil
	}
}

// resolveAdjoint picks the callback answering Aᴴ·src.
// Order: explicit → Hermitian (Aᴴ = A) → symmetric over the reals → nil.
// A genuinely complex symmetric operator deliberately falls through:
// its adjoint is conj(A), which forward cannot supply.
func (op *Operator[T]) resolveAdjoint() ApplyFunc[T] {
	switch {
	case op.adjoint != nil:
		return op.adjoint
	case op.hermitian:
		return op.forward
	case op.symmetric && !IsComplex[T]():
		return op.forward
	default:
		return nil
	}
}

// Apply computes dst ← α·(A·src) + β·dst. With beta == 0, dst's prior
// contents are never read.
func (op *Operator[T]) Apply(dst, src []T, alpha, beta T) error {
	if op.checks {
		if err := validateApplyDims(op.rows, op.cols, dst, src); err != nil {
			return err
		}
	}
	op.forward(dst, src, alpha, beta)

	return nil
}

// ApplyTranspose computes dst ← α·(Aᵀ·src) + β·dst, or returns
// ErrNoTranspose when the direction is unresolvable.
func (op *Operator[T]) ApplyTranspose(dst, src []T, alpha, beta T) error {
	f := op.resolveTranspose()
	if f == nil {
		return ErrNoTranspose
	}
	if op.checks {
		if err := validateApplyDims(op.cols, op.rows, dst, src); err != nil {
			return err
		}
	}
	f(dst, src, alpha, beta)

	return nil
}

// ApplyAdjoint computes dst ← α·(Aᴴ·src) + β·dst, or returns
// ErrNoAdjoint when the direction is unresolvable.
func (op *Operator[T]) ApplyAdjoint(dst, src []T, alpha, beta T) error {
	f := op.resolveAdjoint()
	if f == nil {
		return ErrNoAdjoint
	}
	if op.checks {
		if err := validateApplyDims(op.cols, op.rows, dst, src); err != nil {
			return err
		}
	}
	f(dst, src, alpha, beta)

	return nil
}
