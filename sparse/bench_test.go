// SPDX-License-Identifier: MIT

// Micro-benchmarks for the hot structural operations.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
)

// benchMatrix builds a deterministic n×n matrix with roughly 30% density.
func benchMatrix(b *testing.B, n int) *sparse.CSR {
	b.Helper()
	rng := rand.New(rand.NewSource(refSeed))
	indptr := make([]int, n+1)
	var indices []int
	var values []float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rng.Float64() <= 0.3 {
				indices = append(indices, j)
				values = append(values, rng.NormFloat64())
			}
		}
		indptr[i+1] = len(values)
	}
	m, err := sparse.NewCSR(values, indices, indptr, sparse.Shape{Rows: n, Cols: n})
	if err != nil {
		b.Fatalf("benchMatrix: %v", err)
	}

	return m
}

func BenchmarkRowSliceStrided(b *testing.B) {
	m := benchMatrix(b, 1000)
	s := sparse.Strided(1, -2, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.RowSlice(i%1000, s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetCol(b *testing.B) {
	m := benchMatrix(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.GetCol(i % 1000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRound(b *testing.B) {
	m := benchMatrix(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Round(2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTranspose(b *testing.B) {
	m := benchMatrix(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Transpose()
	}
}
