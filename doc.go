// Package linop is your matrix-free toolbox for linear operators — objects
// that behave like a matrix under multiplication without ever materializing
// their entries.
//
// 🚀 What is linop?
//
//	A small, focused library that brings together:
//		• Operator core: one generic Operator[T] over float64 / complex128
//		• Generalized apply: dst ← α·(A·src) + β·dst for forward, transpose, adjoint
//		• Matrix bridges: dense, symmetric, band & Hermitian gonum representations
//		• Raw callbacks: build operators from plain or scaled-accumulating functions
//		• Scratch arenas: heap, pooled, and memory-mapped temporary storage
//
// ✨ Why choose linop?
//
//   - Krylov-ready – iterative solvers only ever need Apply, never At(i, j)
//   - Uniform contract – every constructor converges on the same operator value
//   - Honest failures – missing transpose/adjoint fails loudly via sentinel errors
//   - BLAS underneath – multiplication delegates to gonum's blas64/cblas128 kernels
//
// Under the hood, everything is organized under three subpackages:
//
//	operator/ — the Operator[T] core, factories, options & apply contract
//	matop/    — constructors wrapping gonum matrix representations
//	storage/  — Arena[T] scratch-vector families (heap, pool, mmap)
//
// Quick sketch:
//
//	    src ──▶ [ Operator ] ──▶ α·(A·src) + β·dst
//	               │
//	               └── closes over a matrix, a band, or a raw callback
//
// Dive into the package examples for usage patterns, from wrapping a dense
// gonum matrix to writing a fully matrix-free stencil.
//
//	go get github.com/katalvlaran/linop/operator
package linop
