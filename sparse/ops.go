// SPDX-License-Identifier: MIT

// Package sparse - structural query operations.
//
// Purpose:
//   - RowSlice: dense[row, start:stop:step] semantics computed purely from
//     the compressed row span — the dense row is never materialized.
//   - GetRow / GetCol: 1×cols and rows×1 extraction as CSR.
//   - SliceRows: row-axis submatrix with full slice semantics.
//   - Transpose / Diagonal: structural conveniences.
//
// Determinism & Policy:
//   - Every operation allocates a fresh *CSR; the receiver is never touched.
//   - Loop orders are fixed; result entries are emitted in traversal order.
//   - Row access costs O(row span); column access costs O(nnz). The
//     asymmetry is inherent to row-major compressed storage and is accepted
//     rather than patched over with an auxiliary column index.

package sparse

import "sort"

// RowSlice returns a new 1×len(range) matrix equivalent to indexing the
// dense row: dense[row, start:stop:step].
//
// Stage 1 (Validate): nil receiver; row after negative-index normalization
// must lie in [0, rows); slice step must be non-zero.
// Stage 2 (Resolve): normalize the slice against the column count into an
// explicit (start, step, count) traversal.
// Stage 3 (Match): walk the stored row span once; an entry at column c is
// selected iff c == start + k*step for some k in [0, count), and its new
// column index is that ordinal k — slicing renumbers columns 0..count-1 in
// traversal order (which runs right-to-left when step < 0).
// Stage 4 (Finalize): emit entries sorted by ordinal and assemble the
// two-element indptr.
//
// An empty normalized range yields a valid 1×0 matrix, not an error.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrZeroStep.
// Complexity: O(span·log span) time (sort by ordinal), O(span) memory.
func (m *CSR) RowSlice(row int, s Slice) (*CSR, error) {
	if m == nil {
		return nil, csrErrorf("RowSlice", ErrNilMatrix)
	}
	r, err := normalizeAxisIndex(row, m.shape.Rows)
	if err != nil {
		return nil, csrErrorf("RowSlice", err)
	}
	start, step, count, err := s.normalize(m.shape.Cols)
	if err != nil {
		return nil, csrErrorf("RowSlice", err)
	}

	// Collect (ordinal, value) pairs from the stored span. Column order
	// within a row is not an invariant, so ordinals may arrive unsorted.
	type hit struct {
		ord int     // position within the traversal, the new column index
		val float64 // carried value
	}
	var hits []hit
	for p := m.indptr[r]; p < m.indptr[r+1]; p++ {
		if k, ok := ordinalOf(m.indices[p], start, step, count); ok {
			hits = append(hits, hit{ord: k, val: m.values[p]})
		}
	}
	// Restore traversal order. Ordinals are unique (columns are unique per
	// row), so the sort is total.
	sort.Slice(hits, func(a, b int) bool { return hits[a].ord < hits[b].ord })

	outIdx := make([]int, len(hits))
	outVal := make([]float64, len(hits))
	for i, h := range hits {
		outIdx[i] = h.ord
		outVal[i] = h.val
	}

	return newCSRUnchecked(outVal, outIdx, []int{0, len(hits)}, Shape{Rows: 1, Cols: count}, m.opts), nil
}

// ordinalOf reports whether column c is selected by the traversal
// (start, step, count) and, if so, at which ordinal. Complexity: O(1).
func ordinalOf(c, start, step, count int) (int, bool) {
	d := c - start
	if step > 0 {
		if d < 0 || d%step != 0 {
			return 0, false
		}
		d /= step
	} else {
		// Reverse walk: selected columns sit at or below start.
		if d > 0 || (-d)%(-step) != 0 {
			return 0, false
		}
		d = -d / -step
	}
	if d >= count {
		return 0, false
	}

	return d, true
}

// GetRow returns row i as a new 1×cols matrix — shorthand for
// RowSlice(i, All()). Negative i counts from the last row.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(row span · log span).
func (m *CSR) GetRow(i int) (*CSR, error) {
	out, err := m.RowSlice(i, All())
	if err != nil {
		return nil, csrErrorf("GetRow", err)
	}

	return out, nil
}

// GetCol returns column j as a new rows×1 matrix, equal to dense[:, j:j+1].
// Negative j counts from the last column.
//
// CSR stores no column-major index, so every row span is scanned for a
// matching column — the documented O(nnz) cost of column access. Each row
// contributes at most one entry (columns are unique per row).
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(nnz) time, O(column nnz) memory.
func (m *CSR) GetCol(j int) (*CSR, error) {
	if m == nil {
		return nil, csrErrorf("GetCol", ErrNilMatrix)
	}
	col, err := normalizeAxisIndex(j, m.shape.Cols)
	if err != nil {
		return nil, csrErrorf("GetCol", err)
	}

	outPtr := make([]int, m.shape.Rows+1)
	var outIdx []int
	var outVal []float64
	for i := 0; i < m.shape.Rows; i++ { // fixed row order
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			if m.indices[p] == col {
				outIdx = append(outIdx, 0) // single-column result
				outVal = append(outVal, m.values[p])
				break
			}
		}
		outPtr[i+1] = len(outVal)
	}

	return newCSRUnchecked(outVal, outIdx, outPtr, Shape{Rows: m.shape.Rows, Cols: 1}, m.opts), nil
}

// SliceRows returns the submatrix dense[start:stop:step, :] as a new
// len(range)×cols matrix. Row spans are carried over verbatim (column
// indices are unchanged); only the row order follows the traversal.
//
// An empty normalized range yields a valid 0×cols matrix.
// Errors: ErrNilMatrix, ErrZeroStep.
// Complexity: O(selected nnz) time and memory.
func (m *CSR) SliceRows(s Slice) (*CSR, error) {
	if m == nil {
		return nil, csrErrorf("SliceRows", ErrNilMatrix)
	}
	start, step, count, err := s.normalize(m.shape.Rows)
	if err != nil {
		return nil, csrErrorf("SliceRows", err)
	}

	outPtr := make([]int, count+1)
	var outIdx []int
	var outVal []float64
	for k := 0; k < count; k++ { // traversal order, reversed when step < 0
		r := start + k*step
		lo, hi := m.indptr[r], m.indptr[r+1]
		outIdx = append(outIdx, m.indices[lo:hi]...)
		outVal = append(outVal, m.values[lo:hi]...)
		outPtr[k+1] = len(outVal)
	}

	return newCSRUnchecked(outVal, outIdx, outPtr, Shape{Rows: count, Cols: m.shape.Cols}, m.opts), nil
}

// Transpose returns the transpose as a new cols×rows CSR matrix, built
// with a counting sort over column indices (the classic two-pass CSR
// transpose). Within each result row, entries appear in ascending source
// row order.
// Complexity: O(rows + cols + nnz) time, O(cols + nnz) memory.
func (m *CSR) Transpose() *CSR {
	nnz := len(m.values)
	outPtr := make([]int, m.shape.Cols+1)
	// Pass 1: per-column counts become the transpose's row pointers.
	for _, c := range m.indices {
		outPtr[c+1]++
	}
	for c := 0; c < m.shape.Cols; c++ {
		outPtr[c+1] += outPtr[c]
	}
	// Pass 2: scatter entries into their slots, advancing a per-column cursor.
	next := make([]int, m.shape.Cols)
	copy(next, outPtr[:m.shape.Cols])
	outIdx := make([]int, nnz)
	outVal := make([]float64, nnz)
	for i := 0; i < m.shape.Rows; i++ { // fixed row order keeps result deterministic
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			c := m.indices[p]
			slot := next[c]
			next[c]++
			outIdx[slot] = i
			outVal[slot] = m.values[p]
		}
	}

	return newCSRUnchecked(outVal, outIdx, outPtr, Shape{Rows: m.shape.Cols, Cols: m.shape.Rows}, m.opts)
}

// Diagonal returns the main diagonal as a flat slice of length
// min(rows, cols), with implicit zeros where no entry is stored.
// Complexity: O(nnz) worst case.
func (m *CSR) Diagonal() []float64 {
	n := m.shape.Rows
	if m.shape.Cols < n {
		n = m.shape.Cols
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			if m.indices[p] == i {
				out[i] = m.values[p]
				break
			}
		}
	}

	return out
}
