// SPDX-License-Identifier: MIT

// Package sparse implements a Compressed Sparse Row (CSR) matrix and a
// small set of structural operations over it.
//
// A CSR matrix stores its non-zero entries row-by-row in three parallel
// arrays:
//
//	indptr  — row pointers: row i's entries live at offsets
//	          indptr[i] .. indptr[i+1] (len == rows+1, non-decreasing,
//	          indptr[0] == 0, indptr[rows] == nnz)
//	indices — column index of each stored entry (each in [0, cols))
//	values  — the stored scalars, parallel to indices
//
// An entry with no stored representation is an implicit zero: every read
// operation treats absence as the value 0.
//
// The package provides:
//
//   - NewCSR — strict construction: every structural invariant above is
//     validated, and malformed input is rejected with ErrBadStructure,
//     never repaired or normalized.
//   - RowSlice — dense[row, start:stop:step] semantics computed purely
//     from the compressed row span, including negative bounds, negative
//     steps, clamping and empty ranges (see Slice).
//   - GetRow / GetCol — 1×cols and rows×1 extraction.
//   - Round — element-wise half-to-even rounding that preserves the
//     sparsity pattern exactly (explicit zeros stay explicit).
//   - SliceRows, Transpose, Diagonal, At — row-range submatrices and
//     other structural conveniences.
//
// Every operation returns a new *CSR and never mutates its receiver; the
// accessors return copies of the backing arrays. A constructed matrix is
// therefore immutable, and concurrent read-only use of the same matrix
// by multiple goroutines is safe without locks.
//
// Storage is row-major: reading a row costs O(row span), while GetCol
// must scan every stored entry — O(nnz). This asymmetry is inherent to
// CSR and is documented rather than worked around.
package sparse
