package value

import (
	"time"

	"github.com/kilnbyte/bdoc/objectid"
	"github.com/kilnbyte/bdoc/vlong"
)

// Double is an IEEE-754 binary64 value.
type Double float64

// Kind implements Value.
func (Double) Kind() Kind { return KindDouble }

// String is a UTF-8 string value.
type String string

// Kind implements Value.
func (String) Kind() Kind { return KindString }

// Bool is a boolean value.
type Bool bool

// Kind implements Value.
func (Bool) Kind() Kind { return KindBool }

// Null is BDoc's explicit null. It carries no payload; the zero value is
// the only value.
type Null struct{}

// Kind implements Value.
func (Null) Kind() Kind { return KindNull }

// Int32 is a signed 32-bit integer value.
type Int32 int32

// Kind implements Value.
func (Int32) Kind() Kind { return KindInt32 }

// Int64 is a signed 64-bit integer value, backed by vlong's two's-complement
// arithmetic.
type Int64 struct {
	V vlong.Int64
}

// Kind implements Value.
func (Int64) Kind() Kind { return KindInt64 }

// NewInt64 wraps a vlong.Int64 as an Int64 Value.
func NewInt64(v vlong.Int64) Int64 { return Int64{V: v} }

// Timestamp is BDoc's internal timestamp variant: two opaque 32-bit halves,
// kept distinct from Int64 and Datetime so decode can tell the three apart.
type Timestamp struct {
	V vlong.Timestamp
}

// Kind implements Value.
func (Timestamp) Kind() Kind { return KindTimestamp }

// NewTimestamp wraps a vlong.Timestamp as a Timestamp Value.
func NewTimestamp(v vlong.Timestamp) Timestamp { return Timestamp{V: v} }

// Datetime is a signed 64-bit count of milliseconds since the Unix epoch.
type Datetime int64

// Kind implements Value.
func (Datetime) Kind() Kind { return KindDatetime }

// DatetimeFromTime converts a time.Time to a Datetime, truncating to
// millisecond precision the way the wire format requires.
func DatetimeFromTime(t time.Time) Datetime {
	return Datetime(t.UnixMilli())
}

// Time converts the Datetime back to a time.Time in UTC.
func (d Datetime) Time() time.Time {
	return time.UnixMilli(int64(d)).UTC()
}

// ObjectID wraps a 12-byte object identifier as a Value.
type ObjectID struct {
	V objectid.ObjectID
}

// Kind implements Value.
func (ObjectID) Kind() Kind { return KindObjectID }

// NewObjectID wraps an objectid.ObjectID as an ObjectID Value.
func NewObjectID(id objectid.ObjectID) ObjectID { return ObjectID{V: id} }
