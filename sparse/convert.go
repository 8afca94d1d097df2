// SPDX-License-Identifier: MIT

// Package sparse - dense bridges.
//
// ToDense and FromDense connect the CSR core to the dense package. They
// exist for verification and ingestion at the edges: no in-scope operation
// materializes a dense matrix internally.

package sparse

import (
	"math"

	"github.com/katalvlaran/sparsemat/dense"
)

// ToDense materializes the full logical content as a dense.Dense.
// Intended for verification and debugging; cost is the full dense extent.
// Errors: ErrNilMatrix on nil receiver.
// Complexity: O(rows*cols + nnz) time, O(rows*cols) memory.
func (m *CSR) ToDense() (*dense.Dense, error) {
	if m == nil {
		return nil, csrErrorf("ToDense", ErrNilMatrix)
	}
	d, err := dense.NewDense(m.shape.Rows, m.shape.Cols)
	if err != nil {
		return nil, csrErrorf("ToDense", err)
	}
	for i := 0; i < m.shape.Rows; i++ { // fixed row order
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			// Indices were validated at construction; Set cannot fail here.
			_ = d.Set(i, m.indices[p], m.values[p])
		}
	}

	return d, nil
}

// FromDense builds a CSR matrix from a dense one, storing exactly the
// entries that compare != 0. Column indices come out ascending within each
// row (a convenient, though not required, property).
// Errors: ErrNilMatrix on nil input; ErrNaNInf under the numeric policy.
// Complexity: O(rows*cols) time, O(nnz) memory.
func FromDense(d *dense.Dense, opts ...Option) (*CSR, error) {
	if d == nil {
		return nil, csrErrorf("FromDense", ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	rows, cols := d.Rows(), d.Cols()

	indptr := make([]int, rows+1)
	var indices []int
	var values []float64
	for i := 0; i < rows; i++ { // row-major scan
		for j := 0; j < cols; j++ {
			v, _ := d.At(i, j) // in-bounds by loop construction
			if v == 0 {
				continue // implicit zero
			}
			indices = append(indices, j)
			values = append(values, v)
		}
		indptr[i+1] = len(values)
	}

	// The triple is valid by construction; only the numeric policy applies.
	if o.validateNaNInf {
		for _, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, csrErrorf("FromDense", ErrNaNInf)
			}
		}
	}

	return newCSRUnchecked(values, indices, indptr, Shape{Rows: rows, Cols: cols}, o), nil
}
