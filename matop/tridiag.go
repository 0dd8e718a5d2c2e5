// SPDX-License-Identifier: MIT

// Package matop: symmetric tridiagonal bridges over raw diagonal slices.
//
// Purpose:
//   - Wrap a symmetric tridiagonal matrix held as its diagonal and
//     off-diagonal, without packing into band storage (no copy; mutations
//     of the slices stay visible through the operator).
//
// Classification policy:
//   - Real element domain  ⇒ symmetric AND Hermitian.
//   - Complex element domain ⇒ symmetric only: a complex symmetric
//     tridiagonal matrix is generally NOT Hermitian.
//
// Notes:
//   - BLAS has no complex-symmetric multiply, so both variants share one
//     O(n) stencil kernel; the real case could use Sbmv instead, but that
//     would force a packing copy (see FromSymBand for the packed route).

package matop

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/linop/operator"
)

// triApply builds the generalized tridiagonal kernel over live diag/off
// views. The β == 0 branch never reads dst.
func triApply[T operator.Scalar](diag, off []T) operator.ApplyFunc[T] {
	return func(dst, src []T, alpha, beta T) {
		n := len(diag)
		for i := 0; i < n; i++ {
			sum := diag[i] * src[i]
			if i > 0 {
				sum += off[i-1] * src[i-1]
			}
			if i < n-1 {
				sum += off[i] * src[i+1]
			}
			if beta == 0 {
				dst[i] = alpha * sum
			} else {
				dst[i] = alpha*sum + beta*dst[i]
			}
		}
	}
}

// FromSymTridiag wraps the real symmetric tridiagonal matrix with main
// diagonal diag and off-diagonal off (len(off) == len(diag)−1; ErrShape
// otherwise). Symmetric and Hermitian over the reals; transpose and
// adjoint resolve through the fallback.
func FromSymTridiag(diag, off []float64, opts ...operator.Option[float64]) (*operator.Operator[float64], error) {
	if len(off) != max(len(diag)-1, 0) {
		return nil, fmt.Errorf("FromSymTridiag: %w (diag=%d, off=%d)", ErrShape, len(diag), len(off))
	}
	n := len(diag)

	return operator.New(n, n, triApply(diag, off),
		append([]operator.Option[float64]{
			operator.WithSymmetric[float64](),
			operator.WithHermitian[float64](),
		}, opts...)...), nil
}

// FromCSymTridiag wraps a complex symmetric tridiagonal matrix. The
// operator reports symmetric but NOT Hermitian; the adjoint is installed
// explicitly as multiplication by conj(A), entry-conjugated on the fly.
func FromCSymTridiag(diag, off []complex128, opts ...operator.Option[complex128]) (*operator.Operator[complex128], error) {
	if len(off) != max(len(diag)-1, 0) {
		return nil, fmt.Errorf("FromCSymTridiag: %w (diag=%d, off=%d)", ErrShape, len(diag), len(off))
	}
	n := len(diag)

	// Aᴴ = conj(A) for symmetric A.
	adjoint := func(dst, src []complex128, alpha, beta complex128) {
		for i := 0; i < n; i++ {
			sum := cmplx.Conj(diag[i]) * src[i]
			if i > 0 {
				sum += cmplx.Conj(off[i-1]) * src[i-1]
			}
			if i < n-1 {
				sum += cmplx.Conj(off[i]) * src[i+1]
			}
			if beta == 0 {
				dst[i] = alpha * sum
			} else {
				dst[i] = alpha*sum + beta*dst[i]
			}
		}
	}

	return operator.New(n, n, triApply(diag, off),
		append([]operator.Option[complex128]{
			operator.WithSymmetric[complex128](),
			operator.WithAdjoint(adjoint),
		}, opts...)...), nil
}
