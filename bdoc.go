// Package bdoc provides a bidirectional codec for the binary document
// interchange format used by a well-known document database.
//
// It converts between a host value graph (documents, arrays, and a closed
// set of tagged leaf values) and a little-endian byte stream obeying that
// format's framing rules. The codec is purely computational: Encode and
// Decode take an input and produce an output with no shared state, no
// I/O, and no blocking.
//
// # Basic usage
//
//	doc := value.NewDocument(
//	    value.Element{Key: "name", Value: value.String("ferris")},
//	    value.Element{Key: "legs", Value: value.Int32(8)},
//	)
//	wire, err := bdoc.Encode(doc)
//
//	decoded, err := bdoc.Decode(wire)
//	d := decoded.(*value.Document)
//
// # Package structure
//
// This package re-exports the most common entry points from the codec
// subpackage. For the value model (Document, Array, and the leaf
// variants), see the value subpackage; for 64-bit integer arithmetic and
// ObjectID generation, see vlong and objectid. EncodeEnvelope/DecodeEnvelope
// layer optional compression from the envelope subpackage on top of an
// encoded byte stream, the way MongoDB's wire protocol wraps an
// otherwise-uncompressed BSON payload in OP_COMPRESSED framing.
package bdoc

import (
	"github.com/kilnbyte/bdoc/codec"
	"github.com/kilnbyte/bdoc/envelope"
	"github.com/kilnbyte/bdoc/objectid"
	"github.com/kilnbyte/bdoc/value"
)

// Option configures a single Encode or Decode call.
type Option = codec.Option

// WithStrictKeys enables strict element-key validation on Encode: a key
// beginning with '$' or containing '.' fails the call.
func WithStrictKeys(enabled bool) Option {
	return codec.WithStrictKeys(enabled)
}

// WithMaxDepth overrides the maximum document/array nesting depth Encode
// and Decode will follow before failing.
func WithMaxDepth(depth int) Option {
	return codec.WithMaxDepth(depth)
}

// Encode serializes v, which must be a *value.Document or a value.DbRef,
// into a BDoc byte stream.
func Encode(v value.Value, opts ...Option) ([]byte, error) {
	return codec.Encode(v, opts...)
}

// Decode parses a BDoc byte stream into a value.Value: a *value.Document,
// or a value.DbRef if the decoded document is exactly "$ref" (String),
// "$id" (ObjectID) and an optional "$db" (String), in that order. A
// document whose first key is "$ref" but that has other keys, another key
// order or other value types is returned as a *value.Document.
func Decode(data []byte, opts ...Option) (value.Value, error) {
	return codec.Decode(data, opts...)
}

// NewObjectID generates a new 12-byte ObjectID.
func NewObjectID() objectid.ObjectID {
	return objectid.Generate()
}

// EncodeEnvelope encodes v exactly as Encode does, then compresses the
// resulting byte stream with the given algorithm. The compression layer
// sits outside BDoc's own framing (spec.md's Non-goals keep the codec
// itself uncompressed), so the result is only decodable by DecodeEnvelope
// with the same CompressionType, not by Decode directly.
func EncodeEnvelope(v value.Value, compression envelope.CompressionType, opts ...Option) ([]byte, error) {
	wire, err := Encode(v, opts...)
	if err != nil {
		return nil, err
	}

	envCodec, err := envelope.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	return envCodec.Compress(wire)
}

// DecodeEnvelope reverses EncodeEnvelope: it decompresses data with the
// given algorithm, then decodes the recovered BDoc byte stream exactly as
// Decode does.
func DecodeEnvelope(data []byte, compression envelope.CompressionType, opts ...Option) (value.Value, error) {
	envCodec, err := envelope.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	wire, err := envCodec.Decompress(data)
	if err != nil {
		return nil, err
	}

	return Decode(wire, opts...)
}
