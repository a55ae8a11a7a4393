package bdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilnbyte/bdoc/envelope"
	"github.com/kilnbyte/bdoc/value"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := value.NewDocument(
		value.Element{Key: "name", Value: value.String("ferris")},
		value.Element{Key: "legs", Value: value.Int32(8)},
	)

	wire, err := Encode(doc)
	require.NoError(t, err)

	got, err := Decode(wire)
	require.NoError(t, err)

	decoded, ok := got.(*value.Document)
	require.True(t, ok)

	name, ok := decoded.Get("name")
	require.True(t, ok)
	assert.Equal(t, value.String("ferris"), name)
}

func TestNewObjectIDIsUnique(t *testing.T) {
	a := NewObjectID()
	b := NewObjectID()
	assert.False(t, a.Equal(b))
}

func TestEncodeEnvelopeRoundTrip(t *testing.T) {
	doc := value.NewDocument(
		value.Element{Key: "name", Value: value.String("ferris ferris ferris ferris")},
		value.Element{Key: "legs", Value: value.Int32(8)},
	)

	for _, compression := range []envelope.CompressionType{
		envelope.CompressionNone,
		envelope.CompressionZstd,
		envelope.CompressionS2,
		envelope.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			wire, err := EncodeEnvelope(doc, compression)
			require.NoError(t, err)

			got, err := DecodeEnvelope(wire, compression)
			require.NoError(t, err)

			decoded, ok := got.(*value.Document)
			require.True(t, ok)
			name, ok := decoded.Get("name")
			require.True(t, ok)
			assert.Equal(t, value.String("ferris ferris ferris ferris"), name)
		})
	}
}

func TestDecodeEnvelopeUnsupportedCompressionType(t *testing.T) {
	_, err := DecodeEnvelope([]byte{0x00}, envelope.CompressionType(99))
	assert.Error(t, err)
}
