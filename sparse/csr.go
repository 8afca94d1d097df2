// SPDX-License-Identifier: MIT

// Package sparse - CSR storage & strict construction.
//
// Purpose:
//   - Own the three parallel arrays (indptr / indices / values) plus shape.
//   - Enforce every structural invariant at construction; reject, never repair.
//   - Keep constructed matrices immutable: inputs are copied in, accessors
//     copy out, and no operation mutates an existing instance.
//
// Complexity quicksheet:
//   - NewCSR: O(nnz) validation; accessors: O(nnz) copy; At: O(row span);
//     Clone: O(nnz); String: O(rows*cols) (debug only).

package sparse

import (
	"fmt"
	"math"
	"strings"
)

// Shape is the logical (rows, cols) extent of a matrix. Both dimensions
// are >= 0; zero-sized axes are legal (e.g. the result of an empty slice).
type Shape struct {
	Rows int // number of logical rows
	Cols int // number of logical columns
}

// CSR is a Compressed Sparse Row matrix over float64 values.
//
// The backing arrays are private and never shared with callers: NewCSR
// copies its inputs, the accessors return fresh copies, and every
// operation allocates a new instance. A *CSR is therefore safe for
// concurrent read-only use without locks.
type CSR struct {
	shape   Shape     // logical extent
	indptr  []int     // row pointers, len == shape.Rows+1
	indices []int     // column index per stored entry, len == nnz
	values  []float64 // stored scalars, parallel to indices
	opts    options   // construction-time policy (propagated to results)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*CSR)(nil)

// csrErrorf wraps a sentinel with a uniform method-context prefix.
// Sentinels stay matchable via errors.Is.
func csrErrorf(method string, err error) error {
	return fmt.Errorf("CSR.%s: %w", method, err)
}

// NewCSR constructs a CSR matrix from the canonical triple plus shape.
//
// Stage 1 (Validate): every invariant below, in order; first violation wins.
//   - shape.Rows >= 0 && shape.Cols >= 0, else ErrBadShape;
//   - len(indptr) == shape.Rows+1, indptr[0] == 0, indptr non-decreasing,
//     indptr[rows] == len(indices) == len(values), else ErrBadStructure;
//   - every indices entry in [0, shape.Cols), unique within its row,
//     else ErrBadStructure;
//   - every value finite under the numeric policy (DefaultValidateNaNInf),
//     else ErrNaNInf.
//
// Stage 2 (Prepare): copy all three arrays (the caller keeps ownership of
// its slices; later mutation of them cannot corrupt the matrix).
// Stage 3 (Finalize): return the immutable instance.
//
// No repair or silent coercion happens at any point: out-of-order column
// indices within a row are accepted (ordering is not an invariant), but
// anything structurally inconsistent is rejected.
// Complexity: O(nnz) time, O(nnz) memory.
func NewCSR(values []float64, indices []int, indptr []int, shape Shape, opts ...Option) (*CSR, error) {
	o := gatherOptions(opts...)
	if err := validateStructure(values, indices, indptr, shape); err != nil {
		return nil, csrErrorf("NewCSR", err)
	}
	if o.validateNaNInf {
		for _, v := range values { // fixed order scan
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, csrErrorf("NewCSR", ErrNaNInf)
			}
		}
	}

	return newCSRUnchecked(values, indices, indptr, shape, o), nil
}

// newCSRUnchecked copies the triple into a fresh instance without
// re-validating. Callers guarantee the invariants hold (either validated
// above or true by construction inside an operation).
func newCSRUnchecked(values []float64, indices []int, indptr []int, shape Shape, o options) *CSR {
	m := &CSR{
		shape:   shape,
		indptr:  make([]int, len(indptr)),
		indices: make([]int, len(indices)),
		values:  make([]float64, len(values)),
		opts:    o,
	}
	copy(m.indptr, indptr)
	copy(m.indices, indices)
	copy(m.values, values)

	return m
}

// Rows returns the number of logical rows. Complexity: O(1).
func (m *CSR) Rows() int { return m.shape.Rows }

// Cols returns the number of logical columns. Complexity: O(1).
func (m *CSR) Cols() int { return m.shape.Cols }

// Shape returns the logical (rows, cols) extent. Complexity: O(1).
func (m *CSR) Shape() Shape { return m.shape }

// NNZ returns the number of stored (explicit) entries. Stored zeros count:
// NNZ reflects structure, not numeric content. Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.values) }

// Values returns a copy of the stored scalars in storage order.
// Complexity: O(nnz).
func (m *CSR) Values() []float64 {
	out := make([]float64, len(m.values))
	copy(out, m.values)

	return out
}

// Indices returns a copy of the per-entry column indices in storage order.
// Complexity: O(nnz).
func (m *CSR) Indices() []int {
	out := make([]int, len(m.indices))
	copy(out, m.indices)

	return out
}

// Indptr returns a copy of the row-pointer array (len == Rows()+1).
// Complexity: O(rows).
func (m *CSR) Indptr() []int {
	out := make([]int, len(m.indptr))
	copy(out, m.indptr)

	return out
}

// At returns the logical value at (i, j), treating absent entries as 0.
// Negative indices count from the end of the respective axis.
// Errors: ErrNilMatrix on nil receiver; ErrOutOfRange after normalization.
// Complexity: O(row span).
func (m *CSR) At(i, j int) (float64, error) {
	if m == nil {
		return 0, csrErrorf("At", ErrNilMatrix)
	}
	row, err := normalizeAxisIndex(i, m.shape.Rows)
	if err != nil {
		return 0, csrErrorf("At", err)
	}
	col, err := normalizeAxisIndex(j, m.shape.Cols)
	if err != nil {
		return 0, csrErrorf("At", err)
	}
	// Scan the row span; column indices are unique per row, first hit wins.
	for p := m.indptr[row]; p < m.indptr[row+1]; p++ {
		if m.indices[p] == col {
			return m.values[p], nil
		}
	}

	return 0, nil // implicit zero
}

// Clone returns a deep copy. The copy shares nothing with the original.
// Complexity: O(nnz).
func (m *CSR) Clone() *CSR {
	return newCSRUnchecked(m.values, m.indices, m.indptr, m.shape, m.opts)
}

// String renders the logical (dense) content for debugging. Intended for
// small matrices only. Complexity: O(rows*cols + nnz).
func (m *CSR) String() string {
	var sb strings.Builder
	row := make([]float64, m.shape.Cols) // scratch, reused per row
	for i := 0; i < m.shape.Rows; i++ {
		for j := range row {
			row[j] = 0
		}
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			row[m.indices[p]] = m.values[p]
		}
		sb.WriteString("[")
		for j, v := range row {
			sb.WriteString(fmt.Sprintf("%g", v))
			if j < len(row)-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// normalizeAxisIndex resolves a possibly-negative index against axis
// length n: negative values gain n, and the result must land in [0, n).
// Returns ErrOutOfRange otherwise. Complexity: O(1).
func normalizeAxisIndex(i, n int) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, ErrOutOfRange
	}

	return i, nil
}
