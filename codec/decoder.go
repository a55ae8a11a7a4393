package codec

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/kilnbyte/bdoc/errs"
	"github.com/kilnbyte/bdoc/objectid"
	"github.com/kilnbyte/bdoc/value"
	"github.com/kilnbyte/bdoc/vlong"
)

// Decode parses a BDoc byte stream into a value.Value, the inverse of
// Encode (§4.5). The top-level result is a *value.Document, unless it has
// the exact DbRef shape recognized by maybeDbRef, in which case it is
// returned as a value.DbRef; a document whose first key is "$ref" but that
// does not match that shape stays a *value.Document. Trailing bytes past the declared frame are
// ignored, matching §4.5's definition of decode as reading exactly the
// declared document and no further.
func Decode(data []byte, opts ...Option) (value.Value, error) {
	cfg := newEncodeConfig()
	applyOptions(cfg, opts...)

	doc, _, err := readDocument(data, 0, cfg, 0)
	if err != nil {
		return nil, err
	}

	return maybeDbRef(doc), nil
}

// maybeDbRef recognizes the DbRef sugar shape (§3.2, §4.5 step 4): exactly
// "$ref" followed by "$id" and an optional "$db", with no further keys. A
// Document whose first key is "$ref" but that doesn't match this exact
// shape is not DbRef-shaped and is returned unchanged, so no sibling data
// is ever silently dropped.
func maybeDbRef(d *value.Document) value.Value {
	if d.Len() < 2 || d.Len() > 3 || d.Elements[0].Key != "$ref" {
		return d
	}

	ns, ok := d.Elements[0].Value.(value.String)
	if !ok {
		return d
	}

	if d.Elements[1].Key != "$id" {
		return d
	}
	oid, ok := d.Elements[1].Value.(value.ObjectID)
	if !ok {
		return d
	}

	ref := value.DbRef{Namespace: string(ns), ID: oid.V}

	if d.Len() == 3 {
		if d.Elements[2].Key != "$db" {
			return d
		}
		db, ok := d.Elements[2].Value.(value.String)
		if !ok {
			return d
		}
		s := string(db)
		ref.DB = &s
	}

	return ref
}

// readDocument reads a framed document starting at off, returning the
// parsed Document and the offset just past its terminator (§4.5 steps
// 1-3).
func readDocument(data []byte, off int, cfg *encodeConfig, depth int) (*value.Document, int, error) {
	if depth > cfg.maxDepth {
		return nil, 0, errs.ErrRecursionTooDeep
	}

	end, cursor, err := readFrame(data, off)
	if err != nil {
		return nil, 0, err
	}

	doc := value.NewDocument()
	for cursor < end-1 {
		tag, key, next, err := readElementHeader(data, cursor, end)
		if err != nil {
			return nil, 0, err
		}
		cursor = next

		v, next, err := readPayload(tag, data, cursor, cfg, depth)
		if err != nil {
			return nil, 0, err
		}
		cursor = next

		doc.Append(key, v)
	}

	if cursor != end-1 || data[cursor] != 0x00 {
		return nil, 0, errs.ErrMissingTerminator
	}

	return doc, end, nil
}

// readArray reads a framed array, the same framing as a document but with
// synthetic decimal keys (§3.2, §4.5). Elements are placed at their
// parsed numeric index regardless of wire order, with gaps filled by
// value.Null.
func readArray(data []byte, off int, cfg *encodeConfig, depth int) (*value.Array, int, error) {
	if depth > cfg.maxDepth {
		return nil, 0, errs.ErrRecursionTooDeep
	}

	end, cursor, err := readFrame(data, off)
	if err != nil {
		return nil, 0, err
	}

	arr := value.NewArray()
	for cursor < end-1 {
		tag, key, next, err := readElementHeader(data, cursor, end)
		if err != nil {
			return nil, 0, err
		}
		cursor = next

		v, next, err := readPayload(tag, data, cursor, cfg, depth)
		if err != nil {
			return nil, 0, err
		}
		cursor = next

		idx, convErr := strconv.Atoi(key)
		if convErr != nil || idx < 0 {
			return nil, 0, fmt.Errorf("bdoc: invalid array index key %q", key)
		}
		for len(arr.Items) <= idx {
			arr.Items = append(arr.Items, value.Null{})
		}
		arr.Items[idx] = v
	}

	if cursor != end-1 || data[cursor] != 0x00 {
		return nil, 0, errs.ErrMissingTerminator
	}

	return arr, end, nil
}

// readFrame reads the int32 length prefix at off and validates it against
// the remaining input, returning the exclusive end offset of this
// container and the offset just past the prefix (§4.5 step 1).
func readFrame(data []byte, off int) (end, cursor int, err error) {
	if off+4 > len(data) {
		return 0, 0, errs.ErrTruncated
	}

	n := int(wireEndian.Uint32(data[off : off+4]))
	if n < 5 {
		return 0, 0, errs.ErrTruncated
	}

	end = off + n
	if end > len(data) {
		return 0, 0, errs.ErrTruncated
	}

	return end, off + 4, nil
}

// readElementHeader reads a tag byte and a NUL-terminated key, both
// bounded by end, the enclosing container's exclusive end offset.
func readElementHeader(data []byte, off, end int) (tag value.Kind, key string, next int, err error) {
	if off >= end {
		return 0, "", 0, errs.ErrTruncated
	}

	tag = value.Kind(data[off])
	off++

	keyEnd := off
	for keyEnd < end && data[keyEnd] != 0x00 {
		keyEnd++
	}
	if keyEnd >= end {
		return 0, "", 0, errs.ErrMissingKey
	}

	key = string(data[off:keyEnd])

	return tag, key, keyEnd + 1, nil
}

// readPayload reads one element's payload per its tag, the inverse of
// writePayload (§4.5).
func readPayload(tag value.Kind, data []byte, off int, cfg *encodeConfig, depth int) (value.Value, int, error) {
	switch tag {
	case value.KindNull:
		return value.Null{}, off, nil
	case value.KindBool:
		if off+1 > len(data) {
			return nil, 0, errs.ErrTruncated
		}

		return value.Bool(data[off] != 0), off + 1, nil
	case value.KindInt32:
		if off+4 > len(data) {
			return nil, 0, errs.ErrTruncated
		}

		return value.Int32(int32(wireEndian.Uint32(data[off : off+4]))), off + 4, nil
	case value.KindDouble:
		if off+8 > len(data) {
			return nil, 0, errs.ErrTruncated
		}

		return value.Double(math.Float64frombits(wireEndian.Uint64(data[off : off+8]))), off + 8, nil
	case value.KindDatetime:
		if off+8 > len(data) {
			return nil, 0, errs.ErrTruncated
		}

		return value.Datetime(int64(wireEndian.Uint64(data[off : off+8]))), off + 8, nil
	case value.KindInt64:
		if off+8 > len(data) {
			return nil, 0, errs.ErrTruncated
		}

		return value.NewInt64(vlong.FromInt(int64(wireEndian.Uint64(data[off : off+8])))), off + 8, nil
	case value.KindTimestamp:
		if off+8 > len(data) {
			return nil, 0, errs.ErrTruncated
		}
		bits := vlong.FromInt(int64(wireEndian.Uint64(data[off : off+8])))

		return value.NewTimestamp(vlong.TimestampFromBits(bits)), off + 8, nil
	case value.KindObjectID:
		if off+objectid.Size > len(data) {
			return nil, 0, errs.ErrTruncated
		}
		id, err := objectid.FromBytes(data[off : off+objectid.Size])
		if err != nil {
			return nil, 0, err
		}

		return value.NewObjectID(id), off + objectid.Size, nil
	case value.KindString:
		return readString(data, off)
	case value.KindBinary:
		return readBinary(data, off)
	case value.KindRegex:
		return readRegex(data, off)
	case value.KindDocument:
		doc, next, err := readDocument(data, off, cfg, depth+1)
		if err != nil {
			return nil, 0, err
		}

		return maybeDbRef(doc), next, nil
	case value.KindArray:
		return readArray(data, off, cfg, depth+1)
	case value.KindCodeWithScope:
		return readCodeWithScope(data, off, cfg, depth)
	default:
		return nil, 0, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownTag, byte(tag))
	}
}

// readString reads BDoc's length-prefixed, NUL-terminated string payload
// (§3.2, §4.4), validating the decoded bytes as UTF-8 (§4.5).
func readString(data []byte, off int) (value.Value, int, error) {
	if off+4 > len(data) {
		return nil, 0, errs.ErrTruncated
	}

	lenWithNUL := int(wireEndian.Uint32(data[off : off+4]))
	off += 4
	if lenWithNUL < 1 || off+lenWithNUL > len(data) {
		return nil, 0, errs.ErrTruncated
	}

	payload := data[off : off+lenWithNUL-1]
	if data[off+lenWithNUL-1] != 0x00 {
		return nil, 0, errs.ErrMissingTerminator
	}
	if !utf8.Valid(payload) {
		return nil, 0, errs.ErrInvalidUTF8
	}

	return value.String(payload), off + lenWithNUL, nil
}

// readBinary reads BDoc's legacy double-length Binary framing: an outer
// int32 total_len, a subtype byte, an inner int32 payload_len, then the
// raw payload (§4.3, §4.4). The inner length is authoritative for the
// payload bounds, matching the original BSON extension's serializer.
func readBinary(data []byte, off int) (value.Value, int, error) {
	if off+4 > len(data) {
		return nil, 0, errs.ErrTruncated
	}
	off += 4 // outer total_len, not needed to reconstruct the payload

	if off+1 > len(data) {
		return nil, 0, errs.ErrTruncated
	}
	subtype := data[off]
	off++

	if off+4 > len(data) {
		return nil, 0, errs.ErrTruncated
	}
	payloadLen := int(wireEndian.Uint32(data[off : off+4]))
	off += 4

	if payloadLen < 0 || off+payloadLen > len(data) {
		return nil, 0, errs.ErrTruncated
	}
	payload := make([]byte, payloadLen)
	copy(payload, data[off:off+payloadLen])

	return value.NewBinary(subtype, payload), off + payloadLen, nil
}

// readRegex reads two consecutive NUL-terminated byte strings: pattern
// and options (§4.5).
func readRegex(data []byte, off int) (value.Value, int, error) {
	pattern, next, err := readCString(data, off)
	if err != nil {
		return nil, 0, err
	}

	opts, next2, err := readCString(data, next)
	if err != nil {
		return nil, 0, err
	}

	return value.NewRegex(pattern, opts), next2, nil
}

func readCString(data []byte, off int) (string, int, error) {
	end := off
	for end < len(data) && data[end] != 0x00 {
		end++
	}
	if end >= len(data) {
		return "", 0, errs.ErrMissingTerminator
	}

	return string(data[off:end]), end + 1, nil
}

// readCodeWithScope reads a code-with-scope block: int32 total_len, the
// NUL-terminated code string, then the embedded scope document, bounded
// by total_len (§4.5).
func readCodeWithScope(data []byte, off int, cfg *encodeConfig, depth int) (value.Value, int, error) {
	if depth+1 > cfg.maxDepth {
		return nil, 0, errs.ErrRecursionTooDeep
	}

	start := off
	if off+4 > len(data) {
		return nil, 0, errs.ErrTruncated
	}
	totalLen := int(wireEndian.Uint32(data[off : off+4]))
	if totalLen < 4 || start+totalLen > len(data) {
		return nil, 0, errs.ErrTruncated
	}
	off += 4

	codeVal, next, err := readString(data, off)
	if err != nil {
		return nil, 0, err
	}
	code := string(codeVal.(value.String))
	off = next

	scope, next, err := readDocument(data, off, cfg, depth+1)
	if err != nil {
		return nil, 0, err
	}
	off = next

	if off-start != totalLen {
		return nil, 0, errs.ErrTruncated
	}

	return value.NewCodeWithScope(code, scope), off, nil
}
