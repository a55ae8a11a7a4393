package value

import (
	"fmt"
	"math"

	"github.com/kilnbyte/bdoc/vlong"
)

// FromNumber promotes a generic host number to the correct BDoc numeric
// variant following the range/fractional rule in §3.2:
//
//   - a non-zero fractional part promotes to Double;
//   - otherwise, a value within [-2^31, 2^31-1] promotes to Int32;
//   - otherwise it promotes to Int64.
//
// Accepted inputs are the host's built-in numeric kinds; any other type
// returns an error. This is the one place BDoc performs runtime type
// discrimination on a caller-supplied value — everywhere else the value
// model's tagged variants make the kind explicit up front (§9).
func FromNumber(n any) (Value, error) {
	switch v := n.(type) {
	case float32:
		return fromFloat(float64(v)), nil
	case float64:
		return fromFloat(v), nil
	case int:
		return fromInt(int64(v)), nil
	case int8:
		return fromInt(int64(v)), nil
	case int16:
		return fromInt(int64(v)), nil
	case int32:
		return fromInt(int64(v)), nil
	case int64:
		return fromInt(v), nil
	case uint:
		return fromUint(uint64(v)), nil
	case uint8:
		return fromUint(uint64(v)), nil
	case uint16:
		return fromUint(uint64(v)), nil
	case uint32:
		return fromUint(uint64(v)), nil
	case uint64:
		return fromUint(v), nil
	default:
		return nil, fmt.Errorf("value: %T is not a generic host number", n)
	}
}

func fromFloat(f float64) Value {
	if f != math.Trunc(f) || math.IsNaN(f) || math.IsInf(f, 0) {
		return Double(f)
	}

	return fromInt(int64(f))
}

func fromInt(i int64) Value {
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		return Int32(int32(i))
	}

	return NewInt64(vlong.FromInt(i))
}

func fromUint(u uint64) Value {
	if u <= math.MaxInt32 {
		return Int32(int32(u))
	}
	if u <= math.MaxInt64 {
		return NewInt64(vlong.FromInt(int64(u)))
	}

	// Beyond int64 range: saturate through the documented FromNumber
	// overflow policy rather than silently wrapping.
	return NewInt64(vlong.FromNumber(float64(u)))
}
