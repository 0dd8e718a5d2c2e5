// SPDX-License-Identifier: MIT

package matop_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linop/matop"
)

func TestFromSymmetric_FlagsAndKernel(t *testing.T) {
	t.Parallel()

	// S = [[2,1],[1,3]] — over the reals symmetric ⇒ Hermitian.
	s := mat.NewSymDense(2, []float64{2, 1, 1, 3})
	op := matop.FromSymmetric(s)

	require.True(t, op.Symmetric())
	require.True(t, op.Hermitian())

	src := []float64{1, 2}
	dst := make([]float64, 2)
	require.NoError(t, op.Apply(dst, src, 1, 0))
	require.Equal(t, []float64{4, 7}, dst)

	// Both fallback directions answer with the forward kernel.
	require.NoError(t, op.ApplyTranspose(dst, src, 1, 0))
	require.Equal(t, []float64{4, 7}, dst)
	require.NoError(t, op.ApplyAdjoint(dst, src, 1, 0))
	require.Equal(t, []float64{4, 7}, dst)
}

func TestFromSymmetric_AgreesWithDense(t *testing.T) {
	t.Parallel()

	s := mat.NewSymDense(3, []float64{4, 1, -2, 1, 5, 3, -2, 3, 6})
	d := mat.NewDense(3, 3, []float64{4, 1, -2, 1, 5, 3, -2, 3, 6})

	symOp := matop.FromSymmetric(s)
	dnsOp := matop.FromDense(d)

	src := []float64{1, -1, 2}
	want := []float64{7, 7, 7}
	got := []float64{7, 7, 7}
	require.NoError(t, dnsOp.Apply(want, src, 2, 1))
	require.NoError(t, symOp.Apply(got, src, 2, 1))
	require.Equal(t, want, got, "Symv must agree with Gemv on the full matrix")
}

func TestFromSymBand_TridiagonalCase(t *testing.T) {
	t.Parallel()

	// 1D Laplacian, order 3: diag 2, off-diagonal −1, packed upper band K=1.
	band := mat.NewSymBandDense(3, 1, []float64{2, -1, 2, -1, 2, 0})
	op := matop.FromSymBand(band)

	require.True(t, op.Symmetric())
	require.True(t, op.Hermitian())

	dst := make([]float64, 3)
	require.NoError(t, op.Apply(dst, []float64{1, 1, 1}, 1, 0))
	require.Equal(t, []float64{1, 0, 1}, dst)

	// Same matrix through the raw-slice tridiagonal bridge.
	triOp, err := matop.FromSymTridiag([]float64{2, 2, 2}, []float64{-1, -1})
	require.NoError(t, err)
	triDst := make([]float64, 3)
	require.NoError(t, triOp.Apply(triDst, []float64{1, 1, 1}, 1, 0))
	require.Equal(t, dst, triDst, "Sbmv and the stencil kernel must agree")
}
