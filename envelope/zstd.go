package envelope

// ZstdCompressor compresses an encoded document buffer with Zstandard.
//
// This compressor favors compression ratio over speed, making it suited
// for documents headed to cold storage or across a bandwidth-constrained
// link rather than ones decompressed on every read.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
