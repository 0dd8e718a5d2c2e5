// SPDX-License-Identifier: MIT

// Package matop: dense bridges (real, complex, and the generic fallback).
//
// Behavior highlights:
//   - Closures re-read the raw matrix view on every apply, so mutations of
//     the wrapped matrix after construction are visible through the
//     operator (shared-ownership, caller-managed lifetime).
//   - Shape policing is the kernel's: Gemv panics on incompatible
//     dimensions, exactly as it would for a direct BLAS call.

package matop

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linop/operator"
)

// FromDense wraps a general real dense matrix. Forward, transpose and
// adjoint all delegate to blas64.Gemv; over the reals the adjoint IS the
// transpose.
func FromDense(a *mat.Dense, opts ...operator.Option[float64]) *operator.Operator[float64] {
	rows, cols := a.Dims()

	forward := func(dst, src []float64, alpha, beta float64) {
		blas64.Gemv(blas.NoTrans, alpha, a.RawMatrix(), rvec(src), beta, rvec(dst))
	}
	trans := func(dst, src []float64, alpha, beta float64) {
		blas64.Gemv(blas.Trans, alpha, a.RawMatrix(), rvec(src), beta, rvec(dst))
	}

	return operator.New(rows, cols, forward,
		append([]operator.Option[float64]{
			operator.WithTranspose(trans),
			operator.WithAdjoint(trans),
		}, opts...)...)
}

// FromCDense wraps a general complex dense matrix. The three directions
// map onto cblas128.Gemv's NoTrans, Trans and ConjTrans modes.
func FromCDense(a *mat.CDense, opts ...operator.Option[complex128]) *operator.Operator[complex128] {
	rows, cols := a.Dims()

	forward := func(dst, src []complex128, alpha, beta complex128) {
		cblas128.Gemv(blas.NoTrans, alpha, a.RawCMatrix(), cvec(src), beta, cvec(dst))
	}
	trans := func(dst, src []complex128, alpha, beta complex128) {
		cblas128.Gemv(blas.Trans, alpha, a.RawCMatrix(), cvec(src), beta, cvec(dst))
	}
	adjoint := func(dst, src []complex128, alpha, beta complex128) {
		cblas128.Gemv(blas.ConjTrans, alpha, a.RawCMatrix(), cvec(src), beta, cvec(dst))
	}

	return operator.New(rows, cols, forward,
		append([]operator.Option[complex128]{
			operator.WithTranspose(trans),
			operator.WithAdjoint(adjoint),
		}, opts...)...)
}

// FromMatrix wraps any mat.Matrix through its At accessor — the slow,
// universal path for representations without a raw BLAS view. Both plain
// callbacks run the fixed i→j order and go through the adapter, so the
// operator's arena supplies the product scratch.
func FromMatrix(a mat.Matrix, opts ...operator.Option[float64]) *operator.Operator[float64] {
	rows, cols := a.Dims()

	mul := func(dst, src []float64) {
		for i := 0; i < rows; i++ {
			var sum float64
			for j := 0; j < cols; j++ {
				sum += a.At(i, j) * src[j]
			}
			dst[i] = sum
		}
	}
	mulT := func(dst, src []float64) {
		for j := 0; j < cols; j++ {
			var sum float64
			for i := 0; i < rows; i++ {
				sum += a.At(i, j) * src[i]
			}
			dst[j] = sum
		}
	}

	return operator.NewFromMul(rows, cols, mul,
		append([]operator.Option[float64]{
			operator.WithMulTranspose(mulT),
			operator.WithMulAdjoint(mulT),
		}, opts...)...)
}
