// SPDX-License-Identifier: MIT

// Package operator: domain types shared across factories and kernels.
// This file intentionally contains ONLY the scalar constraint, the two
// callback forms and small scalar helpers. Errors and options live in
// dedicated files (errors.go, options.go) per the global conventions.

package operator

import "math/cmplx"

// Scalar is the element domain an operator promises to operate over.
// The two members mirror the gonum backend split: blas64 drives float64
// kernels, cblas128 drives complex128 kernels.
type Scalar interface {
	float64 | complex128
}

// ApplyFunc is the generalized-apply callback: overwrite dst with
// α·(A·src) + β·dst. When beta == 0 the callback must not read dst's
// prior contents, so an uninitialized or NaN-poisoned destination can
// never contaminate the product.
type ApplyFunc[T Scalar] func(dst, src []T, alpha, beta T)

// MulFunc is the plain-apply callback: write A·src into dst. The caller
// guarantees dst arrives zeroed, so implementations may accumulate
// (dst[i] += ...) instead of assigning.
type MulFunc[T Scalar] func(dst, src []T)

// IsComplex reports whether T is the complex member of Scalar.
// Complexity: O(1); compiles to a constant per instantiation.
func IsComplex[T Scalar]() bool {
	var zero T
	_, ok := any(zero).(complex128)

	return ok
}

// Conj returns the complex conjugate of v; over float64 it is the
// identity. Generic callbacks use it to conjugate entries without
// leaving the Scalar domain (Aᵀ = conj(A) when Aᴴ = A).
func Conj[T Scalar](v T) T {
	if z, ok := any(v).(complex128); ok {
		return any(cmplx.Conj(z)).(T)
	}

	return v
}
