// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or columns). Zero-sized shapes are legal.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrBadStructure is returned when the (values, indices, indptr, shape)
	// triple violates a CSR invariant at construction time: indptr length
	// mismatch, non-monotonic indptr, out-of-range or duplicate column
	// indices, or values/indices length mismatch. Malformed input is
	// rejected, never repaired.
	ErrBadStructure = errors.New("sparse: malformed csr structure")

	// ErrOutOfRange indicates that a row or column index — after
	// negative-index normalization — is outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrZeroStep is returned when a slice is given step == 0, which has
	// no meaningful traversal direction.
	ErrZeroStep = errors.New("sparse: slice step must be non-zero")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (construction).
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *CSR (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
