package vlong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBitsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		low  int32
		high int32
	}{
		{"zero", 0, 0},
		{"positive", 1, 0},
		{"negative one", -1, -1},
		{"min", 0, math.MinInt32},
		{"max", -1, math.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromBits(tt.low, tt.high)
			assert.Equal(t, tt.low, v.Low())
			assert.Equal(t, tt.high, v.High())
		})
	}
}

func TestFromNumber(t *testing.T) {
	assert.Equal(t, Zero, FromNumber(math.NaN()))
	assert.Equal(t, Zero, FromNumber(math.Inf(1)))
	assert.Equal(t, Zero, FromNumber(math.Inf(-1)))
	assert.Equal(t, Min, FromNumber(-9223372036854775808.0))
	assert.Equal(t, Max, FromNumber(9223372036854775807.0))
	assert.Equal(t, FromInt(42), FromNumber(42.0))
	assert.Equal(t, FromInt(-42), FromNumber(-42.0))
}

func TestToNumber(t *testing.T) {
	assert.InDelta(t, 42.0, FromInt(42).ToNumber(), 0)
	assert.InDelta(t, -42.0, FromInt(-42).ToNumber(), 0)
}

func TestNegate(t *testing.T) {
	assert.Equal(t, FromInt(-5), FromInt(5).Negate())
	assert.Equal(t, Min, Min.Negate(), "negate(MIN) saturates to MIN")
}

func TestDivByZero(t *testing.T) {
	_, err := FromInt(10).Div(Zero)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivMinByNegOne(t *testing.T) {
	got, err := Min.Div(FromInt(-1))
	require.NoError(t, err)
	assert.Equal(t, Min, got)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, FromInt(1).Compare(FromInt(2)))
	assert.Equal(t, 0, FromInt(2).Compare(FromInt(2)))
	assert.Equal(t, 1, FromInt(3).Compare(FromInt(2)))
	assert.Equal(t, -1, FromInt(-1).Compare(FromInt(1)))
}

func TestGreaterThan(t *testing.T) {
	assert.True(t, FromInt(3).GreaterThan(FromInt(2)))
	assert.False(t, FromInt(2).GreaterThan(FromInt(2)))
	assert.False(t, FromInt(1).GreaterThan(FromInt(2)))
}

func TestGreaterThanOrEqual(t *testing.T) {
	assert.True(t, FromInt(3).GreaterThanOrEqual(FromInt(2)))
	assert.True(t, FromInt(2).GreaterThanOrEqual(FromInt(2)))
	assert.False(t, FromInt(1).GreaterThanOrEqual(FromInt(2)))
}

func TestShiftLeftClearsLowBits(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for range 100 {
		a := Int64(r.Int63())
		k := uint(r.Intn(63) + 1)
		shifted := a.ShiftRight(k).ShiftLeft(k)
		mask := Int64((int64(1) << k) - 1)
		assert.Zero(t, int64(shifted)&int64(mask))
	}
}

func TestAlgebraAgreesWithHostArithmetic(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for range 200 {
		a := Int64(r.Int63())
		b := Int64(r.Int63()/2 + 1) // avoid zero divisor, keep magnitude sane

		assert.Equal(t, int64(a)+int64(b), int64(a.Add(b)))
		assert.Equal(t, int64(a)-int64(b), int64(a.Sub(b)))
		assert.Equal(t, int64(a)*int64(b), int64(a.Mul(b)))

		quot, err := a.Div(b)
		require.NoError(t, err)
		assert.Equal(t, int64(a)/int64(b), int64(quot))
	}
}

func TestStringRadix(t *testing.T) {
	s, err := FromInt(255).String(16)
	require.NoError(t, err)
	assert.Equal(t, "ff", s)

	s, err = FromInt(-255).String(16)
	require.NoError(t, err)
	assert.Equal(t, "-ff", s)

	s, err = FromInt(42).String(10)
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	_, err = FromInt(42).String(8)
	require.ErrorIs(t, err, ErrUnsupportedRadix)
}

func TestIsZeroIsNegativeIsOdd(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.False(t, FromInt(1).IsZero())
	assert.True(t, FromInt(-1).IsNegative())
	assert.False(t, FromInt(1).IsNegative())
	assert.True(t, FromInt(3).IsOdd())
	assert.False(t, FromInt(4).IsOdd())
}
