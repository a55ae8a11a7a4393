package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNumberPromotion(t *testing.T) {
	v, err := FromNumber(3.14)
	require.NoError(t, err)
	assert.Equal(t, Double(3.14), v)

	v, err = FromNumber(42)
	require.NoError(t, err)
	assert.Equal(t, Int32(42), v)

	v, err = FromNumber(int64(2147483648))
	require.NoError(t, err)
	if _, ok := v.(Int64); !ok {
		t.Fatalf("expected Int64, got %T", v)
	}

	v, err = FromNumber(2147483647.0)
	require.NoError(t, err)
	assert.Equal(t, Int32(2147483647), v, "boundary value is range-based, not magnitude special-cased")

	v, err = FromNumber(float64(-2147483648))
	require.NoError(t, err)
	assert.Equal(t, Int32(-2147483648), v)
}

func TestFromNumberRejectsNonNumeric(t *testing.T) {
	_, err := FromNumber("not a number")
	require.Error(t, err)
}

func TestFromNumberHandlesUint64Overflow(t *testing.T) {
	v, err := FromNumber(uint64(math.MaxUint64))
	require.NoError(t, err)
	if _, ok := v.(Int64); !ok {
		t.Fatalf("expected Int64, got %T", v)
	}
}
