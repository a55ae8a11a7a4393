// Package vlong implements the two's-complement 64-bit integer arithmetic
// BDoc needs at its wire boundary.
//
// The host language has a native signed 64-bit integer, so Int64 is backed
// by one directly; the "two signed 32-bit halves" view the wire format and
// legacy BDoc implementations use is exposed only at the edges (Low/High,
// FromBits) for callers that build or inspect the wire form directly. This
// keeps the common arithmetic path (add, compare, shift) as plain int64 math
// instead of manual 32-bit carrying.
package vlong

import (
	"errors"
	"math"
)

// Int64 is a signed 64-bit integer value, interpreted in two's complement.
type Int64 int64

// Timestamp shares Int64's representation but is kept as a distinct Go type
// so the BDoc value model can tell the two apart on a round trip even though
// both are encoded as a little-endian 8-byte pair. Timestamp itself offers
// only Compare and the Bits/Seconds/Increment accessors; it has none of
// Int64's arithmetic methods, which apply to the Int64 returned by Bits.
type Timestamp struct {
	bits Int64
}

// Min and Max are the boundary values of a signed 64-bit integer.
const (
	Min = Int64(math.MinInt64)
	Max = Int64(math.MaxInt64)
	// Zero is the additive identity; spelled out because FromNumber returns
	// it explicitly for NaN/Inf inputs.
	Zero = Int64(0)
)

// ErrDivisionByZero is returned by Div when the divisor is zero.
var ErrDivisionByZero = errors.New("vlong: division by zero")

// ErrUnsupportedRadix is returned by String when radix is not 10 or 16.
var ErrUnsupportedRadix = errors.New("vlong: unsupported radix")

// FromInt builds an Int64 from a host integer.
func FromInt(i int64) Int64 {
	return Int64(i)
}

// FromBits builds an Int64 from its low and high signed 32-bit halves with
// no further interpretation: the result is high*2^32 + unsigned(low).
func FromBits(low, high int32) Int64 {
	return Int64(int64(uint64(uint32(high))<<32 | uint64(uint32(low))))
}

// FromNumber builds an Int64 from a host double following BDoc's documented
// overflow policy: NaN and +/-Inf collapse to zero, magnitudes at or beyond
// the 64-bit boundary saturate to Min/Max, and negative values are built by
// negating the positive split.
func FromNumber(d float64) Int64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return Zero
	}
	if d <= -9223372036854775808.0 {
		return Min
	}
	if d >= 9223372036854775807.0 {
		return Max
	}
	if d < 0 {
		return FromNumber(-d).Negate()
	}

	high := int32(d / 4294967296.0)
	low := int32(uint32(math.Mod(d, 4294967296.0)))

	return FromBits(low, high)
}

// ToNumber converts the Int64 to a host double: high*2^32 + unsigned(low).
func (v Int64) ToNumber() float64 {
	return float64(v.High())*4294967296.0 + float64(uint32(v.Low()))
}

// Low returns the low signed 32-bit half.
func (v Int64) Low() int32 {
	return int32(uint32(uint64(v)))
}

// High returns the high signed 32-bit half.
func (v Int64) High() int32 {
	return int32(uint32(uint64(v) >> 32))
}

// Negate returns the two's-complement negation. Negate(Min) == Min, which
// is the documented saturation behavior of two's-complement negation at
// the boundary value.
func (v Int64) Negate() Int64 {
	return -v
}

// Add returns v + other.
func (v Int64) Add(other Int64) Int64 {
	return v + other
}

// Sub returns v - other.
func (v Int64) Sub(other Int64) Int64 {
	return v - other
}

// Mul returns v * other.
func (v Int64) Mul(other Int64) Int64 {
	return v * other
}

// Div returns v / other, truncated toward zero. Div(Min, -1) == Min,
// consistent with two's-complement overflow. Returns ErrDivisionByZero
// when other is zero.
func (v Int64) Div(other Int64) (Int64, error) {
	if other == 0 {
		return Zero, ErrDivisionByZero
	}
	if v == Min && other == -1 {
		return Min, nil
	}

	return v / other, nil
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater than
// other.
func (v Int64) Compare(other Int64) int {
	switch {
	case v < other:
		return -1
	case v > other:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether v is zero.
func (v Int64) IsZero() bool { return v == 0 }

// IsNegative reports whether v is negative.
func (v Int64) IsNegative() bool { return v < 0 }

// IsOdd reports whether v is odd.
func (v Int64) IsOdd() bool { return v&1 != 0 }

// GreaterThan reports whether v > other.
func (v Int64) GreaterThan(other Int64) bool { return v.Compare(other) > 0 }

// GreaterThanOrEqual reports whether v >= other.
func (v Int64) GreaterThanOrEqual(other Int64) bool { return v.Compare(other) >= 0 }

// ShiftRight returns v arithmetically shifted right by n bits, n taken
// modulo 64.
func (v Int64) ShiftRight(n uint) Int64 {
	return v >> (n % 64)
}

// ShiftLeft returns v logically shifted left by n bits, n taken modulo 64.
func (v Int64) ShiftLeft(n uint) Int64 {
	return Int64(uint64(v) << (n % 64))
}

// String renders v in the given radix. Only radix 10 and 16 are supported;
// any other radix returns ErrUnsupportedRadix.
func (v Int64) String(radix int) (string, error) {
	switch radix {
	case 10, 16:
		return formatInt64(int64(v), radix), nil
	default:
		return "", ErrUnsupportedRadix
	}
}

func formatInt64(v int64, radix int) string {
	const digits = "0123456789abcdef"
	if v == 0 {
		return "0"
	}

	neg := v < 0
	// Work in uint64 to avoid overflow when negating Min.
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}

	var buf [70]byte
	i := len(buf)
	base := uint64(radix)
	for u > 0 {
		i--
		buf[i] = digits[u%base]
		u /= base
	}
	if neg {
		i--
		buf[i] = '-'
	}

	return string(buf[i:])
}
