// SPDX-License-Identifier: MIT

// Package dense_test contains unit tests for the Dense matrix.
package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/dense"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := dense.NewDense(-1, 5)                // attempt to create with negative rows
	require.ErrorIs(t, err, dense.ErrBadShape)     // expect ErrBadShape

	_, err = dense.NewDense(5, -1)                 // attempt to create with negative columns
	require.ErrorIs(t, err, dense.ErrBadShape)     // expect ErrBadShape
}

// TestNewDenseZeroDimensions ensures zero-sized shapes are legal.
func TestNewDenseZeroDimensions(t *testing.T) {
	m, err := dense.NewDense(0, 4) // zero rows is a valid degenerate shape
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 4, m.Cols())

	m, err = dense.NewDense(1, 0) // the shape of an empty slice result
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 0, m.Cols())
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                   // define expected row and column counts
	m, err := dense.NewDense(rows, cols) // create a Dense matrix of size 3x4
	require.NoError(t, err)              // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := dense.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)        // assert matrix creation succeeded

	_, err = m.At(-1, 0)                        // attempt At() with negative row index
	require.ErrorIs(t, err, dense.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                         // attempt At() with column index out of range
	require.ErrorIs(t, err, dense.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                     // attempt Set() with row index out of range
	require.ErrorIs(t, err, dense.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, -1, 4.56)                    // attempt Set() with negative column index
	require.ErrorIs(t, err, dense.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := dense.NewDense(2, 3) // create a 2x3 Dense matrix
	require.NoError(t, err)        // ensure valid creation

	err = m.Set(1, 2, 7.89) // set element at row 1, column 2
	require.NoError(t, err) // assert Set() succeeded

	val, err := m.At(1, 2)      // retrieve the set element
	require.NoError(t, err)     // assert At() succeeded
	require.Equal(t, 7.89, val) // assert retrieved value matches set value
}

// TestFromRows validates construction from row slices, including the
// ragged-input rejection.
func TestFromRows(t *testing.T) {
	m, err := dense.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = dense.FromRows([][]float64{{1, 2}, {3}}) // ragged rows
	require.ErrorIs(t, err, dense.ErrBadShape)
}

// TestRow validates whole-row extraction and its bounds check.
func TestRow(t *testing.T) {
	m, err := dense.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	row[0] = 99 // returned slice is a copy
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := dense.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)        // validate creation

	// initialize matrix elements to distinct values
	require.NoError(t, m.Set(0, 0, 1.0))
	require.NoError(t, m.Set(1, 1, 2.0))

	clone := m.Clone() // clone the matrix

	// modify the clone, but not the original
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)     // retrieve original matrix element
	require.NoError(t, err)        // assert At() succeeded on original
	require.Equal(t, 1.0, origVal) // expect original remains unchanged

	cloneVal, err := clone.At(0, 0) // retrieve clone's element
	require.NoError(t, err)         // assert At() succeeded on clone
	require.Equal(t, 3.0, cloneVal) // expect clone reflects new value
}

// TestEqual validates the exact-equality predicate across shapes.
func TestEqual(t *testing.T) {
	a, err := dense.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b := a.Clone()
	require.True(t, a.Equal(b))

	require.NoError(t, b.Set(0, 1, 9))
	require.False(t, a.Equal(b)) // content differs

	c, err := dense.NewDense(2, 3)
	require.NoError(t, err)
	require.False(t, a.Equal(c)) // shape differs
	require.False(t, a.Equal(nil))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := dense.NewDense(2, 2) // create a 2x2 matrix for formatting test
	require.NoError(t, err)        // ensure valid creation

	// populate matrix with sample values
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(1, 0, 3))
	require.NoError(t, m.Set(1, 1, 4))

	expected := "[1, 2]\n[3, 4]\n"         // define expected string output
	require.Equal(t, expected, m.String()) // assert String() output matches expected format
}
