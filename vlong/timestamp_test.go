package vlong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimestampAccessors(t *testing.T) {
	ts := NewTimestamp(1_700_000_000, 7)
	assert.Equal(t, int32(1_700_000_000), ts.Seconds())
	assert.Equal(t, int32(7), ts.Increment())
}

func TestTimestampBitsRoundTrip(t *testing.T) {
	ts := NewTimestamp(42, 9)
	rebuilt := TimestampFromBits(ts.Bits())
	assert.Equal(t, ts, rebuilt)
}

func TestTimestampCompare(t *testing.T) {
	a := NewTimestamp(1, 5)
	b := NewTimestamp(1, 6)
	c := NewTimestamp(2, 0)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
}
