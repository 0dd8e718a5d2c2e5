// Package matop bridges gonum matrix representations into matrix-free
// operators.
//
// The matop package provides:
//
//   - FromDense / FromCDense for general real and complex dense matrices,
//     delegating to the blas64/cblas128 Gemv kernels.
//   - FromSymmetric and FromSymBand for symmetric real storage (Symv and
//     Sbmv kernels).
//   - FromSymTridiag / FromCSymTridiag for symmetric tridiagonal matrices
//     held as diagonal and off-diagonal slices; the complex variant has no
//     BLAS kernel and uses an O(n) stencil instead.
//   - FromHermitian for complex Hermitian storage (Hemv kernel), with a
//     transpose synthesized as conj(A·conj(x)).
//   - FromMatrix, an At-based fallback for arbitrary mat.Matrix values.
//
// Every constructor computes its symmetry classification from the element
// domain — a real symmetric matrix is Hermitian and vice versa, a complex
// symmetric tridiagonal matrix is not — and then converges on the single
// operator.New factory; the multiply mechanics belong to the backend.
//
// No constructor copies the matrix it wraps: the operator closes over the
// caller's value, sees later mutations, and must not outlive it.
package matop
