// SPDX-License-Identifier: MIT

package matop_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"

	"github.com/katalvlaran/linop/matop"
	"github.com/katalvlaran/linop/operator"
	"github.com/katalvlaran/linop/storage"
)

// hermitian2x2 is H = [[2, 1−i],[1+i, 3]] in upper-triangle storage.
func hermitian2x2() cblas128.Hermitian {
	return cblas128.Hermitian{
		N:      2,
		Stride: 2,
		Uplo:   blas.Upper,
		Data:   []complex128{2, 1 - 1i, 0, 3},
	}
}

func TestFromHermitian_FlagsAndForward(t *testing.T) {
	t.Parallel()

	op := matop.FromHermitian(hermitian2x2())

	require.True(t, op.Hermitian())
	require.False(t, op.Symmetric(), "genuinely complex Hermitian is not symmetric")

	src := []complex128{1, 1}
	dst := make([]complex128, 2)
	require.NoError(t, op.Apply(dst, src, 1, 0))
	require.Equal(t, []complex128{3 - 1i, 4 + 1i}, dst)
}

func TestFromHermitian_AdjointFallsBackToForward(t *testing.T) {
	t.Parallel()

	op := matop.FromHermitian(hermitian2x2())
	require.True(t, op.CanAdjoint())

	src := []complex128{1, 1i}
	fwd := make([]complex128, 2)
	adj := make([]complex128, 2)
	require.NoError(t, op.Apply(fwd, src, 1, 0))
	require.NoError(t, op.ApplyAdjoint(adj, src, 1, 0))
	require.Equal(t, fwd, adj, "Hᴴ = H must route adjoint through forward")
}

func TestFromHermitian_SynthesizedTranspose(t *testing.T) {
	t.Parallel()

	// Hᵀ = conj(H) = [[2, 1+i],[1−i, 3]].
	op := matop.FromHermitian(hermitian2x2())
	require.True(t, op.CanTranspose())

	src := []complex128{1, 1}
	dst := make([]complex128, 2)
	require.NoError(t, op.ApplyTranspose(dst, src, 1, 0))
	require.Equal(t, []complex128{3 + 1i, 4 - 1i}, dst)

	// Scaled accumulation through the synthesized kernel.
	dst = []complex128{1, 1}
	require.NoError(t, op.ApplyTranspose(dst, src, 2, 1))
	require.Equal(t, []complex128{7 + 2i, 9 - 2i}, dst)
}

func TestFromHermitian_PooledArenaScratch(t *testing.T) {
	t.Parallel()

	// The synthesized transpose draws its two scratch vectors from the
	// operator's arena; a pooled arena must not change the results.
	op := matop.FromHermitian(hermitian2x2(),
		operator.WithArena[complex128](storage.NewPool[complex128]()),
	)

	src := []complex128{1, 1}
	for range 3 {
		dst := make([]complex128, 2)
		require.NoError(t, op.ApplyTranspose(dst, src, 1, 0))
		require.Equal(t, []complex128{3 + 1i, 4 - 1i}, dst)
	}
}
