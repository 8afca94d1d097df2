// SPDX-License-Identifier: MIT

// Package codec - Marshal / Unmarshal of CSR matrices.
//
// Marshal serializes the canonical triple (indptr, indices, values) plus
// shape into the sectioned blob described in format.go. Unmarshal is the
// exact inverse and finishes by rebuilding the matrix through
// sparse.NewCSR, so structural validation runs on every decode path.

package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/sparsemat/sparse"
)

// Option mutates encoding options. Decoding is option-free: everything a
// reader needs is in the header.
type Option func(*options)

type options struct {
	compression Compression // per-blob section compression
}

// WithCompression selects the section compression algorithm.
// Default: CompressionNone.
func WithCompression(c Compression) Option {
	return func(o *options) { o.compression = c }
}

func gatherOptions(opts ...Option) options {
	o := options{compression: CompressionNone}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Marshal serializes m into a self-contained blob.
//
// Stage 1 (Validate): non-nil matrix, dimensions within uint32, known
// compression tag.
// Stage 2 (Encode): fixed header, then the three sections; each section is
// compressed best-effort and stored verbatim when compression does not
// shrink it.
// Stage 3 (Seal): append the xxHash64 digest of everything written.
//
// Errors: ErrNilMatrix, ErrTooLarge, ErrUnknownCompression.
// Complexity: O(blob size).
func Marshal(m *sparse.CSR, opts ...Option) ([]byte, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := gatherOptions(opts...)
	sc, err := codecFor(o.compression)
	if err != nil {
		return nil, fmt.Errorf("codec.Marshal: %w", err)
	}

	shape := m.Shape()
	nnz := m.NNZ()
	if uint64(shape.Rows) > math.MaxUint32-1 || uint64(shape.Cols) > math.MaxUint32 || uint64(nnz) > math.MaxUint32 {
		return nil, fmt.Errorf("codec.Marshal: %w", ErrTooLarge)
	}

	// Fixed header.
	buf := make([]byte, 0, headerSize)
	buf = binary.LittleEndian.AppendUint32(buf, magic)
	buf = append(buf, formatVersion, uint8(o.compression), valueTypeFloat64, 0)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(shape.Rows))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(shape.Cols))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(nnz))

	// Sections in fixed order: indptr, indices, values.
	for _, raw := range [][]byte{
		uint32Section(m.Indptr()),
		uint32Section(m.Indices()),
		float64Section(m.Values()),
	} {
		buf, err = appendSection(buf, raw, sc)
		if err != nil {
			return nil, fmt.Errorf("codec.Marshal: %w", err)
		}
	}

	// Seal with the digest of everything before it.
	return binary.LittleEndian.AppendUint64(buf, xxhash.Sum64(buf)), nil
}

// Unmarshal decodes a blob produced by Marshal and rebuilds the matrix.
//
// Validation order is deliberate: size envelope, magic, version, digest,
// then tags and sections. The digest check runs before any payload parsing
// so corrupted input fails with ErrChecksum rather than a misleading
// structural error.
//
// Errors: ErrTruncated, ErrBadMagic, ErrUnsupportedVersion, ErrChecksum,
// ErrUnknownCompression, ErrUnknownValueType; structural sentinels from
// sparse.NewCSR pass through wrapped.
// Complexity: O(blob size).
func Unmarshal(data []byte) (*sparse.CSR, error) {
	if len(data) < minBlobSize {
		return nil, fmt.Errorf("codec.Unmarshal: %w", ErrTruncated)
	}
	if binary.LittleEndian.Uint32(data[0:4]) != magic {
		return nil, fmt.Errorf("codec.Unmarshal: %w", ErrBadMagic)
	}
	if data[4] != formatVersion {
		return nil, fmt.Errorf("codec.Unmarshal: %w", ErrUnsupportedVersion)
	}
	body, tail := data[:len(data)-digestSize], data[len(data)-digestSize:]
	if xxhash.Sum64(body) != binary.LittleEndian.Uint64(tail) {
		return nil, fmt.Errorf("codec.Unmarshal: %w", ErrChecksum)
	}

	compression := Compression(data[5])
	sc, err := codecFor(compression)
	if err != nil {
		return nil, fmt.Errorf("codec.Unmarshal: %w", err)
	}
	if data[6] != valueTypeFloat64 {
		return nil, fmt.Errorf("codec.Unmarshal: %w", ErrUnknownValueType)
	}
	rows := int(binary.LittleEndian.Uint32(data[8:12]))
	cols := int(binary.LittleEndian.Uint32(data[12:16]))
	nnz := int(binary.LittleEndian.Uint32(data[16:20]))

	// Sections, in the fixed order they were written.
	rest := body[headerSize:]
	rawPtr, rest, err := decodeSection(rest, sc)
	if err != nil {
		return nil, fmt.Errorf("codec.Unmarshal: indptr: %w", err)
	}
	rawIdx, rest, err := decodeSection(rest, sc)
	if err != nil {
		return nil, fmt.Errorf("codec.Unmarshal: indices: %w", err)
	}
	rawVal, rest, err := decodeSection(rest, sc)
	if err != nil {
		return nil, fmt.Errorf("codec.Unmarshal: values: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("codec.Unmarshal: %w", ErrTruncated)
	}

	// Cross-check section payloads against the header counts.
	if len(rawPtr) != 4*(rows+1) || len(rawIdx) != 4*nnz || len(rawVal) != 8*nnz {
		return nil, fmt.Errorf("codec.Unmarshal: %w", ErrTruncated)
	}

	indptr := uint32SectionInts(rawPtr)
	indices := uint32SectionInts(rawIdx)
	values := float64SectionFloats(rawVal)

	// Full structural validation on the decode path. The numeric policy is
	// not applied: the blob may legitimately carry non-finite values when
	// the source matrix was built with the policy disabled.
	m, err := sparse.NewCSR(values, indices, indptr,
		sparse.Shape{Rows: rows, Cols: cols},
		sparse.WithValidateNaNInf(false))
	if err != nil {
		return nil, fmt.Errorf("codec.Unmarshal: %w", err)
	}

	return m, nil
}

// appendSection writes one section (rawLen, encLen, payload) into buf.
// Compression is best effort: an empty or non-shrinking encoded form makes
// the section go out verbatim with encLen == rawLen.
func appendSection(buf, raw []byte, sc sectionCodec) ([]byte, error) {
	enc, err := sc.compress(raw)
	if err != nil {
		return nil, err
	}
	if len(enc) == 0 || len(enc) >= len(raw) {
		enc = raw // verbatim; signaled by encLen == rawLen
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(raw)))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(enc)))

	return append(buf, enc...), nil
}

// decodeSection reads one section from data, returning the raw payload and
// the remaining bytes.
func decodeSection(data []byte, sc sectionCodec) (raw, rest []byte, err error) {
	if len(data) < sectionHeaderSize {
		return nil, nil, ErrTruncated
	}
	rawLen := int(binary.LittleEndian.Uint32(data[0:4]))
	encLen := int(binary.LittleEndian.Uint32(data[4:8]))
	data = data[sectionHeaderSize:]
	if len(data) < encLen {
		return nil, nil, ErrTruncated
	}
	enc, rest := data[:encLen], data[encLen:]

	if encLen == rawLen {
		// Verbatim section (incompressible payload or CompressionNone).
		return enc, rest, nil
	}
	raw, err = sc.decompress(enc, rawLen)
	if err != nil {
		return nil, nil, err
	}
	if len(raw) != rawLen {
		return nil, nil, ErrTruncated
	}

	return raw, rest, nil
}

// ---------- primitive section encodings ----------

// uint32Section packs ints as little-endian uint32 words.
func uint32Section(vs []int) []byte {
	out := make([]byte, 0, 4*len(vs))
	for _, v := range vs {
		out = binary.LittleEndian.AppendUint32(out, uint32(v))
	}

	return out
}

// uint32SectionInts unpacks little-endian uint32 words into ints.
func uint32SectionInts(data []byte) []int {
	out := make([]int, len(data)/4)
	for i := range out {
		out[i] = int(binary.LittleEndian.Uint32(data[4*i:]))
	}

	return out
}

// float64Section packs float64s as little-endian IEEE-754 bits.
func float64Section(vs []float64) []byte {
	out := make([]byte, 0, 8*len(vs))
	for _, v := range vs {
		out = binary.LittleEndian.AppendUint64(out, math.Float64bits(v))
	}

	return out
}

// float64SectionFloats unpacks little-endian IEEE-754 bits into float64s.
func float64SectionFloats(data []byte) []float64 {
	out := make([]float64, len(data)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[8*i:]))
	}

	return out
}
