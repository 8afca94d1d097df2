// SPDX-License-Identifier: MIT

// Package dense provides a row-major dense float64 matrix.
//
// The package exists as the verification collaborator of sparse: sparse
// results are materialized into a Dense (via sparse.(*CSR).ToDense) and
// compared element-wise against an independently computed expectation.
// Dense is therefore deliberately small: shape, safe accessors, Clone,
// and a Stringer — no arithmetic kernels.
//
// Unlike typical dense containers, zero-sized shapes (0×c, r×0, 0×0) are
// legal here: an empty slice of a sparse row materializes as a 1×0 matrix
// and must remain representable.
//
// All methods are deterministic and allocation-free except the
// constructors and Clone.
package dense
