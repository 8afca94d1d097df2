// SPDX-License-Identifier: MIT

// Package codec - section compressors.
//
// Each Compression tag maps to a small codec with two operations:
// compress (size-reducing best effort) and decompress (exact, the raw
// length is known from the section header). Zstd reuses pooled
// encoder/decoder instances: the klauspost zstd implementation is designed
// to operate without allocations after warmup when instances are stored.

package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the per-blob section compression algorithm.
type Compression uint8

// Known compression tags. The tag value is persisted in the blob header,
// so the mapping below is part of the wire format and must never change.
const (
	CompressionNone Compression = 0 // sections stored verbatim
	CompressionZstd Compression = 1 // Zstandard (klauspost/compress/zstd)
	CompressionS2   Compression = 2 // S2, snappy-compatible (klauspost/compress/s2)
	CompressionLZ4  Compression = 3 // LZ4 block format (pierrec/lz4)
)

// String implements fmt.Stringer for diagnostics and test output.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// sectionCodec compresses and decompresses one section payload.
type sectionCodec interface {
	// compress returns a best-effort compressed form of data. A result that
	// is empty or not smaller than data makes the caller store data verbatim.
	compress(data []byte) ([]byte, error)
	// decompress restores a payload of exactly rawLen bytes.
	decompress(data []byte, rawLen int) ([]byte, error)
}

// codecFor resolves a Compression tag to its implementation.
// Unknown tags return ErrUnknownCompression.
func codecFor(c Compression) (sectionCodec, error) {
	switch c {
	case CompressionNone:
		return noopCodec{}, nil
	case CompressionZstd:
		return zstdCodec{}, nil
	case CompressionS2:
		return s2Codec{}, nil
	case CompressionLZ4:
		return lz4Codec{}, nil
	default:
		return nil, ErrUnknownCompression
	}
}

// ---------- none ----------

type noopCodec struct{}

func (noopCodec) compress(data []byte) ([]byte, error) { return data, nil }

func (noopCodec) decompress(data []byte, rawLen int) ([]byte, error) {
	// Verbatim sections take the equal-length fast path in decodeSection;
	// reaching this point means the blob lied about its encoding.
	if len(data) != rawLen {
		return nil, ErrTruncated
	}

	return data, nil
}

// ---------- zstd ----------

// zstdEncoderPool pools zstd encoders for reuse to eliminate allocation
// overhead. EncodeAll/DecodeAll are stateless and safe on pooled instances.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // blob carries its own digest
		)
		if err != nil {
			// Unreachable with valid static options.
			panic(fmt.Sprintf("codec: failed to create zstd encoder: %v", err))
		}
		return encoder
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // single-threaded, predictable
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("codec: failed to create zstd decoder: %v", err))
		}
		return decoder
	},
}

type zstdCodec struct{}

func (zstdCodec) compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

func (zstdCodec) decompress(data []byte, rawLen int) ([]byte, error) {
	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, make([]byte, 0, rawLen))
	if err != nil {
		return nil, fmt.Errorf("codec: zstd decompress: %w", err)
	}

	return out, nil
}

// ---------- s2 ----------

type s2Codec struct{}

func (s2Codec) compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (s2Codec) decompress(data []byte, rawLen int) ([]byte, error) {
	out, err := s2.Decode(make([]byte, rawLen), data)
	if err != nil {
		return nil, fmt.Errorf("codec: s2 decompress: %w", err)
	}

	return out, nil
}

// ---------- lz4 ----------

// lz4CompressorPool pools lz4.Compressor instances; the compressor keeps
// internal hash tables that benefit from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

type lz4Codec struct{}

func (lz4Codec) compress(data []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("codec: lz4 compress: %w", err)
	}

	// n == 0 means incompressible; the caller then stores the section verbatim.
	return dst[:n], nil
}

func (lz4Codec) decompress(data []byte, rawLen int) ([]byte, error) {
	// Block format carries no length; the section header supplies it exactly.
	dst := make([]byte, rawLen)
	n, err := lz4.UncompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("codec: lz4 decompress: %w", err)
	}
	if n != rawLen {
		return nil, ErrTruncated
	}

	return dst, nil
}
