// Package operator_test provides benchmarks for the apply paths, with
// deterministic fill and per-arena sub-benchmarks for the adapter.
package operator_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linop/operator"
	"github.com/katalvlaran/linop/storage"
)

// benchSizes are the vector lengths to benchmark.
var benchSizes = []int{128, 1024, 8192}

// sink to defeat dead-code elimination
var sinkF float64

func fillRand(s []float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range s {
		s[i] = rng.Float64()
	}
}

// tridiagMul is the plain-form stencil used by the adapter benchmarks.
func tridiagMul(dst, src []float64) {
	n := len(src)
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

func BenchmarkApply_Generalized(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			op := operator.New(n, n, func(dst, src []float64, alpha, beta float64) {
				for i, v := range src {
					if beta == 0 {
						dst[i] = alpha * 2 * v
					} else {
						dst[i] = alpha*2*v + beta*dst[i]
					}
				}
			})
			src := make([]float64, n)
			dst := make([]float64, n)
			fillRand(src, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := op.Apply(dst, src, 1.5, 0.5); err != nil {
					b.Fatal(err)
				}
			}
			sinkF = dst[0]
		})
	}
}

func BenchmarkApply_AdaptedPlain(b *testing.B) {
	arenas := []struct {
		name string
		mk   func() storage.Arena[float64]
	}{
		{"heap", func() storage.Arena[float64] { return storage.Heap[float64]{} }},
		{"pool", func() storage.Arena[float64] { return storage.NewPool[float64]() }},
	}

	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, a := range arenas {
			b.Run(fmt.Sprintf("n=%d/%s", n, a.name), func(b *testing.B) {
				op := operator.NewFromMul(n, n, tridiagMul,
					operator.WithArena[float64](a.mk()),
				)
				src := make([]float64, n)
				dst := make([]float64, n)
				fillRand(src, 4242)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := op.Apply(dst, src, 1, 0); err != nil {
						b.Fatal(err)
					}
				}
				sinkF = dst[0]
			})
		}
	}
}
