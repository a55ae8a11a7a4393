package codec

import (
	"fmt"

	"github.com/kilnbyte/bdoc/errs"
	"github.com/kilnbyte/bdoc/value"
)

// SizeOf returns the exact number of bytes Encode will emit for v, not
// counting the outer element-header bytes (tag + key + NUL) a containing
// document adds around it (§4.3). The encoder relies on this agreeing with
// its own output to the byte so it can allocate exactly once.
func SizeOf(v value.Value) (int, error) {
	switch t := v.(type) {
	case value.Null:
		return 0, nil
	case value.Bool:
		return 1, nil
	case value.Int32:
		return 4, nil
	case value.Double:
		return 8, nil
	case value.Datetime:
		return 8, nil
	case value.Int64:
		return 8, nil
	case value.Timestamp:
		return 8, nil
	case value.ObjectID:
		return 12, nil
	case value.String:
		return 4 + len(string(t)) + 1, nil
	case value.Binary:
		// Legacy BDoc binary framing writes the payload length twice: an
		// outer int32 (payload_len+4, the historical "old binary" total)
		// followed by the subtype byte and a second, inner int32 holding
		// the bare payload length, then the payload itself (§4.3/§4.4).
		return 4 + 1 + 4 + len(t.Data), nil
	case value.Regex:
		return len(t.Pattern) + 1 + len(t.Options) + 1, nil
	case value.CodeWithScope:
		scopeSize, err := SizeOfDocument(t.Scope)
		if err != nil {
			return 0, err
		}

		return 4 + (4 + len(t.Code) + 1) + scopeSize, nil
	case *value.Document:
		return SizeOfDocument(t)
	case *value.Array:
		return SizeOfArray(t)
	case value.DbRef:
		return SizeOfDocument(dbRefDocument(t))
	default:
		return 0, fmt.Errorf("%w: %T", errs.ErrUnsupportedValue, v)
	}
}

// SizeOfDocument returns the exact encoded byte length of a Document,
// including its own 4-byte length prefix and trailing NUL (§4.3).
func SizeOfDocument(d *value.Document) (int, error) {
	total := 4
	for _, el := range d.Elements {
		childSize, err := SizeOf(el.Value)
		if err != nil {
			return 0, err
		}
		total += 1 + len(el.Key) + 1 + childSize
	}
	total++ // trailing NUL

	return total, nil
}

// SizeOfArray returns the exact encoded byte length of an Array, which is
// framed identically to a Document whose keys are synthetic decimal
// indices (§3.2, §4.3).
func SizeOfArray(a *value.Array) (int, error) {
	total := 4
	for i, item := range a.Items {
		childSize, err := SizeOf(item)
		if err != nil {
			return 0, err
		}
		total += 1 + len(indexKey(i)) + 1 + childSize
	}
	total++ // trailing NUL

	return total, nil
}
