// SPDX-License-Identifier: MIT

// Package matop: complex Hermitian bridge.
//
// Classification policy: a genuinely complex Hermitian matrix is NOT
// symmetric (the real case belongs to FromSymmetric, where the two
// classes coincide). The adjoint resolves through the Hermitian fallback;
// the transpose is synthesized, since Aᴴ = A gives Aᵀ = conj(A) and so
// Aᵀ·x = conj(A·conj(x)).

package matop

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas/cblas128"

	"github.com/katalvlaran/linop/operator"
)

// FromHermitian wraps complex Hermitian storage, delegating the forward
// (and, via fallback, adjoint) apply to the cblas128.Hemv kernel over the
// stored triangle. The Hermitian value shares its Data slice with the
// caller; no entries are copied.
func FromHermitian(a cblas128.Hermitian, opts ...operator.Option[complex128]) *operator.Operator[complex128] {
	n := a.N

	forward := func(dst, src []complex128, alpha, beta complex128) {
		cblas128.Hemv(alpha, a, cvec(src), beta, cvec(dst))
	}

	// Declared before New so the closure can reach the operator's arena;
	// it only runs once op is assembled.
	var op *operator.Operator[complex128]
	trans := func(dst, src []complex128, alpha, beta complex128) {
		arena := op.Arena()
		cx := arena.Get(n)
		y := arena.Get(n)
		for i, v := range src {
			cx[i] = cmplx.Conj(v)
		}
		cblas128.Hemv(1, a, cvec(cx), 0, cvec(y))
		if beta == 0 {
			for i := range y {
				dst[i] = alpha * cmplx.Conj(y[i])
			}
		} else {
			for i := range y {
				dst[i] = alpha*cmplx.Conj(y[i]) + beta*dst[i]
			}
		}
		arena.Put(y)
		arena.Put(cx)
	}

	op = operator.New(n, n, forward,
		append([]operator.Option[complex128]{
			operator.WithHermitian[complex128](),
			operator.WithTranspose(trans),
		}, opts...)...)

	return op
}
