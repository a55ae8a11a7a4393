// Package envelope wraps an already-encoded BDoc document buffer with an
// optional compression layer for storage or transport. It sits one level
// above the codec package: callers encode a value.Value into bytes first,
// then hand those bytes to a Codec here if they want the wire form
// compressed before it leaves the process.
package envelope

import "fmt"

// CompressionType identifies which algorithm, if any, compressed an
// envelope's payload.
type CompressionType uint8

const (
	// CompressionNone leaves the payload untouched.
	CompressionNone CompressionType = iota
	// CompressionZstd uses Zstandard, favoring ratio over speed.
	CompressionZstd
	// CompressionS2 uses S2, a Snappy-compatible fast compressor.
	CompressionS2
	// CompressionLZ4 uses LZ4 block compression.
	CompressionLZ4
)

// String renders the CompressionType's name.
func (t CompressionType) String() string {
	switch t {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Compressor compresses an encoded BDoc document buffer.
//
// Memory management: the input slice is never modified. The compressing
// implementations return a newly allocated slice owned by the caller;
// NoOpCompressor returns the input slice itself.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor, recovering an encoded BDoc document
// buffer suitable for codec.Decode. It returns an error if data is
// corrupted or was compressed with a different algorithm than the
// Decompressor expects.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec builds a fresh Codec for the given compression type.
func CreateCodec(compressionType CompressionType) (Codec, error) {
	switch compressionType {
	case CompressionNone:
		return NewNoOpCompressor(), nil
	case CompressionZstd:
		return NewZstdCompressor(), nil
	case CompressionS2:
		return NewS2Compressor(), nil
	case CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("envelope: invalid compression type: %s", compressionType)
	}
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionS2:   NewS2Compressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a shared, built-in Codec for the given compression
// type. Unlike CreateCodec, this reuses one instance per type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if c, ok := builtinCodecs[compressionType]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("envelope: unsupported compression type: %s", compressionType)
}
