// SPDX-License-Identifier: MIT

package operator_test

import (
	"fmt"

	"github.com/katalvlaran/linop/operator"
)

// ExampleNewFromMul builds a fully matrix-free operator — the 1D Laplacian
// stencil — from a plain product callback and drives it through the
// generalized-apply contract.
func ExampleNewFromMul() {
	n := 5
	laplacian := func(dst, src []float64) {
		for i := range src {
			dst[i] = 2 * src[i]
			if i > 0 {
				dst[i] -= src[i-1]
			}
			if i < n-1 {
				dst[i] -= src[i+1]
			}
		}
	}

	op := operator.NewFromMul(n, n, laplacian, operator.WithSymmetric[float64]())

	src := []float64{1, 1, 1, 1, 1}
	dst := make([]float64, n)
	if err := op.Apply(dst, src, 1, 0); err != nil {
		fmt.Println("apply:", err)

		return
	}
	fmt.Println("L·1 =", dst)

	// The stencil is symmetric, so the transpose resolves to forward.
	if err := op.ApplyTranspose(dst, src, 1, 0); err != nil {
		fmt.Println("transpose:", err)

		return
	}
	fmt.Println("Lᵀ·1 =", dst)

	// Output:
	// L·1 = [1 0 0 0 1]
	// Lᵀ·1 = [1 0 0 0 1]
}

// ExampleOperator_Apply shows scaled accumulation: dst ← α·(A·src) + β·dst.
func ExampleOperator_Apply() {
	// A = diag(2, 3).
	op := operator.New(2, 2, func(dst, src []float64, alpha, beta float64) {
		d := []float64{2, 3}
		for i := range d {
			if beta == 0 {
				dst[i] = alpha * d[i] * src[i]
			} else {
				dst[i] = alpha*d[i]*src[i] + beta*dst[i]
			}
		}
	})

	dst := []float64{99, 99} // stale garbage, ignored under β=0
	_ = op.Apply(dst, []float64{1, 1}, 2, 0)
	fmt.Println(dst)

	dst = []float64{1, 1}
	_ = op.Apply(dst, []float64{1, 1}, 2, 1)
	fmt.Println(dst)

	// Output:
	// [4 6]
	// [5 7]
}
