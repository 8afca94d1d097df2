// Package sparsemat is a small, deterministic toolbox for Compressed
// Sparse Row (CSR) matrices — from strict construction to Python-style
// slicing and compact binary persistence.
//
// 🚀 What is sparsemat?
//
//	A focused, pure-Go library that brings together:
//		• Strict CSR construction: malformed (values, indices, indptr,
//		  shape) triples are rejected, never silently repaired
//		• Row slicing with full slice semantics: negative bounds,
//		  negative steps, strided and empty ranges
//		• Row & column extraction as 1×N / N×1 CSR matrices
//		• Structure-preserving element-wise rounding (half-to-even)
//		• Transpose, diagonal and row-range submatrices
//		• A little-endian blob codec with Zstd / S2 / LZ4 compression
//		  and an xxHash64 integrity digest
//
// ✨ Why choose sparsemat?
//
//   - Predictable – every operation returns a new matrix; sources are
//     never mutated, so concurrent read-only sharing is safe by design
//   - Explicit – sentinel errors matched via errors.Is, no panics on
//     user-triggered conditions
//   - Deterministic – fixed loop orders, no map iteration, no globals
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	sparse/ — the CSR core: NewCSR, RowSlice, GetRow, GetCol, Round,
//	          SliceRows, Transpose, Diagonal
//	dense/  — row-major dense matrix used to materialize and verify
//	          sparse results (ToDense / FromDense bridges live in sparse)
//	codec/  — Marshal/Unmarshal of CSR triples into a sectioned,
//	          checksummed, optionally compressed blob
//
// Start with sparse.NewCSR, then explore RowSlice and friends. Use
// ToDense only to verify results: the core never materializes the dense
// matrix on its own.
//
//	go get github.com/katalvlaran/sparsemat
package sparsemat
