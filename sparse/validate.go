// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single, canonical source of truth for structural validation.
//  - Keep constructors minimal by delegating invariant checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate at most one scratch set.
//  - Full validation runs O(nnz) over the triple; nothing is quadratic.

package sparse

// validateStructure checks every CSR invariant over the raw triple.
// It returns the first violated invariant as a plain sentinel
// (ErrBadShape or ErrBadStructure); the caller wraps with context.
//
// Checked, in order:
//  1. shape dimensions are non-negative;
//  2. len(indptr) == rows+1 and indptr[0] == 0;
//  3. indptr is monotonically non-decreasing;
//  4. indptr[rows] == len(indices) == len(values);
//  5. every column index lies in [0, cols);
//  6. column indices are unique within each row (ordering is NOT required).
//
// Complexity: O(rows + nnz).
func validateStructure(values []float64, indices []int, indptr []int, shape Shape) error {
	// 1. Shape sanity.
	if shape.Rows < 0 || shape.Cols < 0 {
		return ErrBadShape
	}
	// 2. Row-pointer envelope.
	if len(indptr) != shape.Rows+1 {
		return ErrBadStructure
	}
	if indptr[0] != 0 {
		return ErrBadStructure
	}
	// 3. Monotonicity.
	for i := 0; i < shape.Rows; i++ {
		if indptr[i] > indptr[i+1] {
			return ErrBadStructure
		}
	}
	// 4. Parallel-array lengths.
	nnz := indptr[shape.Rows]
	if len(indices) != nnz || len(values) != nnz {
		return ErrBadStructure
	}
	// 5 + 6. Column range and per-row uniqueness. The seen-set is reset by
	// generation counter instead of reallocation, keeping the scan O(nnz).
	seen := make([]int, shape.Cols) // seen[c] == generation ⇒ c already used in this row
	for i := 0; i < shape.Rows; i++ {
		gen := i + 1 // generation 0 means "never seen"
		for p := indptr[i]; p < indptr[i+1]; p++ {
			c := indices[p]
			if c < 0 || c >= shape.Cols {
				return ErrBadStructure
			}
			if seen[c] == gen {
				return ErrBadStructure // duplicate column within one row
			}
			seen[c] = gen
		}
	}

	return nil
}
