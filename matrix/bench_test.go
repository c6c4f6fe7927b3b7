// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the kernels on the reservoir hot path,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/reservoir/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{100, 300, 1000}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
	sinkF float64
)

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			RandomFill(b, A, 99)
			x := make([]float64, n)
			for i := range x {
				x[i] = 1
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkGram(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			S := MustDense(b, 2*n, n)
			RandomFill(b, S, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				St, err := matrix.Transpose(S)
				if err != nil {
					b.Fatal(err)
				}
				G, err := matrix.Mul(St, S)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = G
			}
		})
	}
}

func BenchmarkCholesky(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := SPD(b, n, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				L, err := matrix.Cholesky(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = L
			}
		})
	}
}

func BenchmarkSpectralRadius(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, err := matrix.RandomUniform(n, n, 1, 1, matrix.WithSeed(int64(n)))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := matrix.SpectralRadius(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = r
			}
		})
	}
}
