// Package objectid implements BDoc's 12-byte ObjectID: a time/random/counter
// identifier that sorts roughly by creation time and is, in practice, unique
// across processes without coordination.
package objectid

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync/atomic"
	"time"

	"github.com/kilnbyte/bdoc/endian"
)

// Size is the fixed length of an ObjectID in bytes.
const Size = 12

// wireBigEndian and wireLittleEndian are the byte orders ObjectID's two
// halves use on the wire (§3.2): seconds big-endian, fuzz/counter
// little-endian.
var (
	wireBigEndian    = endian.GetBigEndianEngine()
	wireLittleEndian = endian.GetLittleEndianEngine()
)

// ErrInvalidObjectID is returned when parsing input that is neither 12 raw
// bytes nor a 24-character hex string.
var ErrInvalidObjectID = errors.New("objectid: invalid length or encoding")

// ObjectID is a 12-byte BDoc identifier: 4 bytes of seconds since epoch
// (big-endian), 4 bytes of per-process random fuzz, and 4 bytes of a
// monotonically increasing counter.
type ObjectID [Size]byte

var (
	processFuzz uint32
	counter     uint32
)

func init() {
	processFuzz = seedFuzz()
}

// seedFuzz initializes the per-process fuzz from a cryptographic random
// source, falling back to the current wall-clock seconds if that source is
// unavailable — the same degraded-but-deterministic fallback the spec
// documents for environments with no better source of randomness.
func seedFuzz() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err == nil {
		return wireBigEndian.Uint32(b[:])
	}

	return uint32(time.Now().Unix())
}

// Generate produces a new ObjectID composed of the current wall-clock
// second (big-endian), the process-wide fuzz value, and an atomically
// incremented counter. Concurrent callers within the same process never
// observe the same (fuzz, counter) pair twice, so Generate never produces
// duplicates regardless of how many goroutines call it concurrently.
func Generate() ObjectID {
	var id ObjectID

	wireBigEndian.PutUint32(id[0:4], uint32(time.Now().Unix()))
	wireLittleEndian.PutUint32(id[4:8], processFuzz)
	n := atomic.AddUint32(&counter, 1)
	wireLittleEndian.PutUint32(id[8:12], n)

	return id
}

// FromBytes builds an ObjectID from exactly 12 raw bytes.
func FromBytes(b []byte) (ObjectID, error) {
	var id ObjectID
	if len(b) != Size {
		return id, ErrInvalidObjectID
	}
	copy(id[:], b)

	return id, nil
}

// FromHex parses a 24-character lowercase or uppercase hex string into an
// ObjectID.
func FromHex(s string) (ObjectID, error) {
	var id ObjectID
	if len(s) != Size*2 {
		return id, ErrInvalidObjectID
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return id, ErrInvalidObjectID
	}
	copy(id[:], b)

	return id, nil
}

// Bytes returns the 12-byte raw form of the ObjectID.
func (id ObjectID) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, id[:])

	return out
}

// Hex returns the lowercase 24-character hex rendering of the ObjectID.
func (id ObjectID) Hex() string {
	return hex.EncodeToString(id[:])
}

// String satisfies fmt.Stringer with the same lowercase hex form as Hex.
func (id ObjectID) String() string {
	return id.Hex()
}

// Equal reports whether two ObjectIDs hold the same 12 bytes.
func (id ObjectID) Equal(other ObjectID) bool {
	return id == other
}

// IsZero reports whether the ObjectID is the all-zero value.
func (id ObjectID) IsZero() bool {
	return id == ObjectID{}
}

// Timestamp returns the embedded seconds-since-epoch as a time.Time, the
// seconds-granularity creation time carried in an ObjectID's first 4 bytes.
func (id ObjectID) Timestamp() time.Time {
	secs := wireBigEndian.Uint32(id[0:4])

	return time.Unix(int64(secs), 0).UTC()
}
