package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpRoundTrip(t *testing.T) {
	c := NewNoOpCompressor()
	data := []byte("a bdoc document buffer")

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, compressed)

	got, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestS2RoundTrip(t *testing.T) {
	c := NewS2Compressor()
	data := []byte("hello hello hello hello bdoc bdoc bdoc")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	got, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLZ4RoundTrip(t *testing.T) {
	c := NewLZ4Compressor()
	data := []byte("hello hello hello hello bdoc bdoc bdoc")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	got, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestZstdRoundTrip(t *testing.T) {
	c := NewZstdCompressor()
	data := []byte("hello hello hello hello bdoc bdoc bdoc")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	got, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestCreateCodecInvalidType(t *testing.T) {
	_, err := CreateCodec(CompressionType(99))
	assert.Error(t, err)
}

func TestGetCodecReturnsBuiltinZstdCodec(t *testing.T) {
	c, err := GetCodec(CompressionZstd)
	require.NoError(t, err)
	assert.IsType(t, ZstdCompressor{}, c)
}

func TestCompressionTypeString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "s2", CompressionS2.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "unknown", CompressionType(99).String())
}
