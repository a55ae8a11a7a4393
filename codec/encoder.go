package codec

import (
	"fmt"
	"math"

	"github.com/kilnbyte/bdoc/endian"
	"github.com/kilnbyte/bdoc/errs"
	"github.com/kilnbyte/bdoc/value"
)

// wireEndian is the byte order BDoc's multi-byte integers use on the wire
// (§4.4); the format has no configurable endianness, but the encoder
// still goes through an EndianEngine rather than encoding/binary directly
// to keep the read/write call sites uniform with the rest of the module.
var wireEndian = endian.GetLittleEndianEngine()

// Encode serializes v into a BDoc byte stream (§4.4). v must be a
// *value.Document or a value.DbRef; any other top-level shape fails with
// ErrUnsupportedValue, matching §4.4 step 1's requirement that the
// top-level value be document-shaped.
//
// The buffer is sized exactly once from SizeOfDocument and filled in a
// single forward pass without back-patching: §9 notes either strategy is
// valid once sizes are precomputed, and a single pass avoids the extra
// bookkeeping back-patching requires.
func Encode(v value.Value, opts ...Option) ([]byte, error) {
	cfg := newEncodeConfig()
	applyOptions(cfg, opts...)

	doc, err := topLevelDocument(v)
	if err != nil {
		return nil, err
	}

	n, err := SizeOfDocument(doc)
	if err != nil {
		return nil, err
	}

	_, isDbRef := v.(value.DbRef)
	buf := make([]byte, n)
	if _, err := writeDocument(buf, 0, doc, cfg, !isDbRef, 0); err != nil {
		return nil, err
	}

	return buf, nil
}

func topLevelDocument(v value.Value) (*value.Document, error) {
	switch t := v.(type) {
	case *value.Document:
		return t, nil
	case value.DbRef:
		return dbRefDocument(t), nil
	default:
		return nil, fmt.Errorf("%w: top-level value must be a document, got %T", errs.ErrUnsupportedValue, v)
	}
}

// writeDocument writes a Document's framed bytes (length prefix, elements,
// terminator) starting at offset off in buf, returning the offset just
// past the terminator. validateKeys is false for DbRef-synthesized
// documents, since their "$ref"/"$id"/"$db" keys are sugar, not caller
// input, and must not trip strict-mode validation (§4.4).
func writeDocument(buf []byte, off int, d *value.Document, cfg *encodeConfig, validateKeys bool, depth int) (int, error) {
	if depth > cfg.maxDepth {
		return 0, errs.ErrRecursionTooDeep
	}

	size, err := SizeOfDocument(d)
	if err != nil {
		return 0, err
	}

	start := off
	wireEndian.PutUint32(buf[off:], uint32(size))
	off += 4

	for _, el := range d.Elements {
		if cfg.strictKeys && validateKeys {
			if err := validateKey(el.Key); err != nil {
				return 0, err
			}
		}

		off, err = writeElement(buf, off, el.Key, el.Value, cfg, depth)
		if err != nil {
			return 0, err
		}
	}

	buf[off] = 0x00
	off++

	if off-start != size {
		return 0, fmt.Errorf("bdoc: internal size mismatch writing document: wrote %d, expected %d", off-start, size)
	}

	return off, nil
}

// writeArray writes an Array as a Document whose keys are synthetic
// decimal indices (§3.2).
func writeArray(buf []byte, off int, a *value.Array, cfg *encodeConfig, depth int) (int, error) {
	if depth > cfg.maxDepth {
		return 0, errs.ErrRecursionTooDeep
	}

	size, err := SizeOfArray(a)
	if err != nil {
		return 0, err
	}

	start := off
	wireEndian.PutUint32(buf[off:], uint32(size))
	off += 4

	for i, item := range a.Items {
		off, err = writeElement(buf, off, indexKey(i), item, cfg, depth)
		if err != nil {
			return 0, err
		}
	}

	buf[off] = 0x00
	off++

	if off-start != size {
		return 0, fmt.Errorf("bdoc: internal size mismatch writing array: wrote %d, expected %d", off-start, size)
	}

	return off, nil
}

// writeElement writes one element's tag byte, NUL-terminated key, and
// payload, returning the offset just past the payload.
func writeElement(buf []byte, off int, key string, v value.Value, cfg *encodeConfig, depth int) (int, error) {
	buf[off] = byte(v.Kind())
	off++
	off += copy(buf[off:], key)
	buf[off] = 0x00
	off++

	return writePayload(buf, off, v, cfg, depth)
}

// writePayload writes a single value's payload, the inverse of §4.5's
// per-tag read.
func writePayload(buf []byte, off int, v value.Value, cfg *encodeConfig, depth int) (int, error) {
	switch t := v.(type) {
	case value.Null:
		return off, nil
	case value.Bool:
		if t {
			buf[off] = 1
		} else {
			buf[off] = 0
		}

		return off + 1, nil
	case value.Int32:
		wireEndian.PutUint32(buf[off:], uint32(t))

		return off + 4, nil
	case value.Double:
		wireEndian.PutUint64(buf[off:], math.Float64bits(float64(t)))

		return off + 8, nil
	case value.Datetime:
		wireEndian.PutUint64(buf[off:], uint64(int64(t)))

		return off + 8, nil
	case value.Int64:
		wireEndian.PutUint64(buf[off:], uint64(int64(t.V)))

		return off + 8, nil
	case value.Timestamp:
		wireEndian.PutUint64(buf[off:], uint64(int64(t.V.Bits())))

		return off + 8, nil
	case value.ObjectID:
		off += copy(buf[off:], t.V.Bytes())

		return off, nil
	case value.String:
		return writeCString(buf, off, string(t)), nil
	case value.Binary:
		return writeBinary(buf, off, t), nil
	case value.Regex:
		off += copy(buf[off:], t.Pattern)
		buf[off] = 0x00
		off++
		off += copy(buf[off:], t.Options)
		buf[off] = 0x00
		off++

		return off, nil
	case value.CodeWithScope:
		return writeCodeWithScope(buf, off, t, cfg, depth)
	case *value.Document:
		return writeDocument(buf, off, t, cfg, true, depth+1)
	case *value.Array:
		return writeArray(buf, off, t, cfg, depth+1)
	case value.DbRef:
		return writeDocument(buf, off, dbRefDocument(t), cfg, false, depth+1)
	default:
		return 0, fmt.Errorf("%w: %T", errs.ErrUnsupportedValue, v)
	}
}

// writeCString writes BDoc's string payload: an int32 length (including
// the trailing NUL), the UTF-8 bytes, then the NUL (§3.2, §4.4).
func writeCString(buf []byte, off int, s string) int {
	wireEndian.PutUint32(buf[off:], uint32(len(s)+1))
	off += 4
	off += copy(buf[off:], s)
	buf[off] = 0x00
	off++

	return off
}

// writeBinary writes BDoc's legacy double-length Binary framing (§4.3,
// §4.4): an outer int32 total_len (payload_len+4), the subtype byte, an
// inner int32 payload_len, then the raw payload.
func writeBinary(buf []byte, off int, b value.Binary) int {
	wireEndian.PutUint32(buf[off:], uint32(len(b.Data)+4))
	off += 4
	buf[off] = b.Subtype
	off++
	wireEndian.PutUint32(buf[off:], uint32(len(b.Data)))
	off += 4
	off += copy(buf[off:], b.Data)

	return off
}

// writeCodeWithScope writes a CodeWithScope's back-patchable-but-precomputed
// framing: int32 total_len spanning this value's own bytes, then the code
// string, then the serialized scope document.
func writeCodeWithScope(buf []byte, off int, c value.CodeWithScope, cfg *encodeConfig, depth int) (int, error) {
	size, err := SizeOf(c)
	if err != nil {
		return 0, err
	}

	start := off
	wireEndian.PutUint32(buf[off:], uint32(size))
	off += 4
	off = writeCString(buf, off, c.Code)

	off, err = writeDocument(buf, off, c.Scope, cfg, true, depth+1)
	if err != nil {
		return 0, err
	}

	if off-start != size {
		return 0, fmt.Errorf("bdoc: internal size mismatch writing code-with-scope: wrote %d, expected %d", off-start, size)
	}

	return off, nil
}

