// SPDX-License-Identifier: MIT

// Package codec persists CSR matrices as compact, checksummed binary blobs.
//
// A blob is a fixed little-endian header (magic, format version,
// compression tag, value-type tag, rows/cols/nnz), followed by three
// independently compressed sections — indptr, indices, values — and a
// trailing xxHash64 digest of everything before it.
//
// Compression is per-blob and optional: None, Zstd, S2 or LZ4. A section
// whose compressed form would not shrink is stored verbatim (its encoded
// length equals its raw length), so pathological payloads never grow past
// a few header bytes.
//
// Usage:
//
//	blob, err := codec.Marshal(m, codec.WithCompression(codec.CompressionZstd))
//	...
//	m2, err := codec.Unmarshal(blob)
//
// Unmarshal re-validates the decoded triple through sparse.NewCSR, so even
// a corrupted blob that slips past the digest cannot produce a structurally
// invalid matrix.
package codec
