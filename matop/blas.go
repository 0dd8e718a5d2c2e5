// SPDX-License-Identifier: MIT

// Package matop: raw BLAS vector plumbing shared by the bridges.

package matop

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
)

// rvec views s as a unit-stride blas64 vector. No copy.
func rvec(s []float64) blas64.Vector {
	return blas64.Vector{N: len(s), Inc: 1, Data: s}
}

// cvec views s as a unit-stride cblas128 vector. No copy.
func cvec(s []complex128) cblas128.Vector {
	return cblas128.Vector{N: len(s), Inc: 1, Data: s}
}
