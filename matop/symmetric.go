// SPDX-License-Identifier: MIT

// Package matop: symmetric real bridges.
//
// Classification policy: over the reals, symmetric and Hermitian coincide,
// so both entry points here claim both flags. The transpose and adjoint
// are never installed explicitly — the operator core's symmetry fallback
// answers them with the forward kernel.

package matop

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linop/operator"
)

// FromSymmetric wraps a symmetric real dense matrix, delegating to the
// blas64.Symv kernel over the stored triangle.
func FromSymmetric(a *mat.SymDense, opts ...operator.Option[float64]) *operator.Operator[float64] {
	n, _ := a.Dims()

	forward := func(dst, src []float64, alpha, beta float64) {
		blas64.Symv(alpha, a.RawSymmetric(), rvec(src), beta, rvec(dst))
	}

	return operator.New(n, n, forward,
		append([]operator.Option[float64]{
			operator.WithSymmetric[float64](),
			operator.WithHermitian[float64](),
		}, opts...)...)
}

// FromSymBand wraps a symmetric banded real matrix (a tridiagonal matrix
// is the K=1 case), delegating to the blas64.Sbmv kernel on the packed
// band storage.
func FromSymBand(a *mat.SymBandDense, opts ...operator.Option[float64]) *operator.Operator[float64] {
	n, _ := a.Dims()

	forward := func(dst, src []float64, alpha, beta float64) {
		blas64.Sbmv(alpha, a.RawSymBand(), rvec(src), beta, rvec(dst))
	}

	return operator.New(n, n, forward,
		append([]operator.Option[float64]{
			operator.WithSymmetric[float64](),
			operator.WithHermitian[float64](),
		}, opts...)...)
}
