// SPDX-License-Identifier: MIT

// Black-box tests for the dense bridges: FromDense ingestion and ToDense
// materialization.

package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/dense"
	"github.com/katalvlaran/sparsemat/sparse"
)

// TestFromDenseToDenseRoundtrip verifies that dense → CSR → dense is the
// identity on the reference scenario.
func TestFromDenseToDenseRoundtrip(t *testing.T) {
	d := referenceDense(t, 10)

	m, err := sparse.FromDense(d)
	require.NoError(t, err)

	back, err := m.ToDense()
	require.NoError(t, err)
	requireDenseEqual(t, d, back)
}

// TestFromDenseDropsZeros checks that exact zeros become implicit and
// columns come out ascending within each row.
func TestFromDenseDropsZeros(t *testing.T) {
	d, err := dense.FromRows([][]float64{
		{0, 1.5, 0},
		{0, 0, 0},
		{2.5, 0, 3.5},
	})
	require.NoError(t, err)

	m, err := sparse.FromDense(d)
	require.NoError(t, err)
	require.Equal(t, 3, m.NNZ())
	require.Equal(t, []int{0, 1, 1, 3}, m.Indptr()) // middle row is empty
	require.Equal(t, []int{1, 0, 2}, m.Indices())   // ascending per row
	require.Equal(t, []float64{1.5, 2.5, 3.5}, m.Values())
}

// TestFromDenseNumericPolicy checks NaN rejection and its opt-out.
func TestFromDenseNumericPolicy(t *testing.T) {
	d, err := dense.FromRows([][]float64{{math.NaN()}})
	require.NoError(t, err)

	_, err = sparse.FromDense(d)
	require.ErrorIs(t, err, sparse.ErrNaNInf)

	m, err := sparse.FromDense(d, sparse.WithValidateNaNInf(false))
	require.NoError(t, err)
	require.True(t, math.IsNaN(m.Values()[0])) // NaN != 0, so it is stored
}

// TestConvertZeroSized covers degenerate shapes in both directions.
func TestConvertZeroSized(t *testing.T) {
	d, err := dense.NewDense(0, 4)
	require.NoError(t, err)

	m, err := sparse.FromDense(d)
	require.NoError(t, err)
	require.Equal(t, sparse.Shape{Rows: 0, Cols: 4}, m.Shape())
	require.Zero(t, m.NNZ())

	back, err := m.ToDense()
	require.NoError(t, err)
	require.Equal(t, 0, back.Rows())
	require.Equal(t, 4, back.Cols())
}

// TestConvertNilInputs checks the nil error paths of both bridges.
func TestConvertNilInputs(t *testing.T) {
	_, err := sparse.FromDense(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)

	var m *sparse.CSR
	_, err = m.ToDense()
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestToDenseKeepsExplicitZeros verifies that a stored zero materializes
// to the same dense content as an implicit one — the distinction is
// structural only.
func TestToDenseKeepsExplicitZeros(t *testing.T) {
	withExplicit, err := sparse.NewCSR([]float64{0}, []int{1}, []int{0, 1}, sparse.Shape{Rows: 1, Cols: 3})
	require.NoError(t, err)
	withImplicit, err := sparse.NewCSR(nil, nil, []int{0, 0}, sparse.Shape{Rows: 1, Cols: 3})
	require.NoError(t, err)

	de, err := withExplicit.ToDense()
	require.NoError(t, err)
	di, err := withImplicit.ToDense()
	require.NoError(t, err)
	requireDenseEqual(t, di, de)

	// Structurally they differ: one stored entry versus none.
	require.Equal(t, 1, withExplicit.NNZ())
	require.Zero(t, withImplicit.NNZ())
}
