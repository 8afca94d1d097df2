// SPDX-License-Identifier: MIT

// Package codec - wire format constants and sentinel errors.
//
// Blob layout (all integers little-endian):
//
//	offset 0  magic       uint32  "CSR1" (0x43535231)
//	offset 4  version     uint8   formatVersion
//	offset 5  compression uint8   Compression tag
//	offset 6  valueType   uint8   value encoding tag (float64 only today)
//	offset 7  reserved    uint8   must be zero
//	offset 8  rows        uint32
//	offset 12 cols        uint32
//	offset 16 nnz         uint32
//	offset 20 3 × section: rawLen uint32, encLen uint32, encLen bytes
//	tail      digest      uint64  xxHash64 of every preceding byte
//
// Sections appear in fixed order: indptr (uint32 each), indices (uint32
// each), values (IEEE-754 float64 bits). A section with encLen == rawLen
// is stored verbatim regardless of the compression tag.

package codec

import "errors"

const (
	// magic identifies a sparsemat CSR blob ("CSR1").
	magic uint32 = 0x43535231

	// formatVersion is bumped on any incompatible layout change.
	formatVersion uint8 = 1

	// headerSize is the fixed prefix before the first section.
	headerSize = 20

	// digestSize is the trailing xxHash64 footer.
	digestSize = 8

	// sectionHeaderSize precedes each section payload (rawLen + encLen).
	sectionHeaderSize = 8

	// minBlobSize is the smallest well-formed blob: header, three empty
	// sections, digest.
	minBlobSize = headerSize + 3*sectionHeaderSize + digestSize
)

// Value-type tags. Only float64 exists today; the tag keeps the format
// open for narrower value encodings without a version bump.
const (
	valueTypeFloat64 uint8 = 1
)

// Sentinel errors, prefixed "codec: ..." and matched via errors.Is.
var (
	// ErrBadMagic means the input does not start with a sparsemat CSR blob.
	ErrBadMagic = errors.New("codec: bad magic")

	// ErrUnsupportedVersion means the blob was written by an incompatible
	// (newer) format revision.
	ErrUnsupportedVersion = errors.New("codec: unsupported format version")

	// ErrUnknownCompression means the header carries a compression tag this
	// build does not implement.
	ErrUnknownCompression = errors.New("codec: unknown compression")

	// ErrUnknownValueType means the header carries a value-type tag this
	// build cannot decode.
	ErrUnknownValueType = errors.New("codec: unknown value type")

	// ErrChecksum means the trailing digest does not match the blob content.
	ErrChecksum = errors.New("codec: checksum mismatch")

	// ErrTruncated means the input ended before the declared layout did, or
	// a section decoded to an unexpected length.
	ErrTruncated = errors.New("codec: truncated or inconsistent input")

	// ErrTooLarge means a matrix dimension or nnz does not fit the uint32
	// fields of the wire format.
	ErrTooLarge = errors.New("codec: matrix exceeds format limits")

	// ErrNilMatrix means Marshal was handed a nil matrix.
	ErrNilMatrix = errors.New("codec: nil matrix")
)
