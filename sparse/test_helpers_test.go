// SPDX-License-Identifier: MIT

// Shared black-box test scaffolding for the sparse package.
//
// The important piece here is the slicing oracle: an independent,
// loop-based implementation of start:stop:step selection over a plain
// []float64. Property tests materialize sparse results with ToDense and
// compare them against the oracle, so the CSR slice engine is never used
// to check itself.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/dense"
	"github.com/katalvlaran/sparsemat/sparse"
)

// refSeed fixes the pseudo-random reference matrix across runs.
const refSeed = 42

// referenceDense builds the n×n reference scenario: uniform values with
// everything above 0.7 zeroed out (≈30% density).
func referenceDense(t *testing.T, n int) *dense.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(refSeed)) // deterministic
	d, err := dense.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()
			if v > 0.7 {
				v = 0 // implicit zero in the sparse form
			}
			require.NoError(t, d.Set(i, j, v))
		}
	}

	return d
}

// referenceCSR builds the CSR form of the reference scenario.
func referenceCSR(t *testing.T, n int) (*sparse.CSR, *dense.Dense) {
	t.Helper()
	d := referenceDense(t, n)
	m, err := sparse.FromDense(d)
	require.NoError(t, err)

	return m, d
}

// oracleSlice applies start:stop:step to xs with standard sequence-slicing
// semantics, written as a direct walk: resolve both bounds, then step from
// start toward stop collecting elements. Deliberately shares no code with
// the sparse package.
func oracleSlice(xs []float64, s sparse.Slice) []float64 {
	n := len(xs)
	step := 1
	if s.Step != nil {
		step = *s.Step
	}

	// resolve turns one optional bound into a concrete index, clamped into
	// the walkable interval for the given direction.
	resolve := func(bound *int, def int) int {
		if bound == nil {
			return def
		}
		v := *bound
		if v < 0 {
			v += n
		}
		if step > 0 {
			if v < 0 {
				v = 0
			}
			if v > n {
				v = n
			}
		} else {
			if v < -1 {
				v = -1
			}
			if v > n-1 {
				v = n - 1
			}
		}

		return v
	}

	out := []float64{}
	if step > 0 {
		start, stop := resolve(s.Start, 0), resolve(s.Stop, n)
		for k := start; k < stop; k += step {
			out = append(out, xs[k])
		}
	} else {
		start, stop := resolve(s.Start, n-1), resolve(s.Stop, -1)
		for k := start; k > stop; k += step {
			out = append(out, xs[k])
		}
	}

	return out
}

// denseRow extracts row i of d as a flat slice, failing the test on error.
func denseRow(t *testing.T, d *dense.Dense, i int) []float64 {
	t.Helper()
	row, err := d.Row(i)
	require.NoError(t, err)

	return row
}

// requireDenseEqual asserts exact element-wise equality of two dense
// matrices with a readable diff on failure.
func requireDenseEqual(t *testing.T, want, got *dense.Dense) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "row count mismatch")
	require.Equal(t, want.Cols(), got.Cols(), "column count mismatch")
	require.Truef(t, want.Equal(got), "dense content mismatch:\nwant:\n%sgot:\n%s", want, got)
}

// snapshot captures the full observable state of a matrix so tests can
// assert that an operation left its source untouched.
type snapshot struct {
	shape   sparse.Shape
	values  []float64
	indices []int
	indptr  []int
}

func snapshotOf(m *sparse.CSR) snapshot {
	return snapshot{shape: m.Shape(), values: m.Values(), indices: m.Indices(), indptr: m.Indptr()}
}

// requireUnchanged asserts that m still matches a previously taken snapshot.
func requireUnchanged(t *testing.T, s snapshot, m *sparse.CSR) {
	t.Helper()
	require.Equal(t, s.shape, m.Shape())
	require.Equal(t, s.values, m.Values())
	require.Equal(t, s.indices, m.Indices())
	require.Equal(t, s.indptr, m.Indptr())
}
