// SPDX-License-Identifier: MIT

// Package operator: calling-convention adapter and the axpby combiner.
//
// Purpose:
//   - Bridge the plain 3-argument convention (dst ← A·src) into the
//     generalized 5-argument contract (dst ← α·(A·src) + β·dst).
//
// Determinism & Performance:
//   - One scratch vector per call, sized to the callback's output
//     dimension and drawn from the operator's arena. With the default
//     Heap arena this reproduces the reference fresh-allocation design;
//     a Pool arena trades that purity for zero steady-state allocation.
//   - The β == 0 path never reads dst, so poisoned destinations cannot
//     contaminate the result.

package operator

import "github.com/katalvlaran/linop/storage"

// generalize wraps a plain product callback into the generalized-apply
// contract. n is the callback's output dimension (rows for forward, cols
// for transpose/adjoint); arena supplies the zeroed scratch the product
// is computed into before combining.
func generalize[T Scalar](n int, mul MulFunc[T], arena storage.Arena[T]) ApplyFunc[T] {
	return func(dst, src []T, alpha, beta T) {
		tmp := arena.Get(n)
		mul(tmp, src)
		axpby(alpha, tmp, beta, dst)
		arena.Put(tmp)
	}
}

// axpby computes dst = alpha*x + beta*dst elementwise over len(x).
// Invariant: beta == 0 skips the read of dst entirely.
func axpby[T Scalar](alpha T, x []T, beta T, dst []T) {
	switch {
	case beta == 0 && alpha == 1:
		copy(dst, x)
	case beta == 0:
		for i, v := range x {
			dst[i] = alpha * v
		}
	case beta == 1:
		for i, v := range x {
			dst[i] += alpha * v
		}
	default:
		for i, v := range x {
			dst[i] = alpha*v + beta*dst[i]
		}
	}
}
