package vlong

// NewTimestamp builds a Timestamp from its wire-order seconds and increment
// halves: the wire encodes increment in the low 32 bits and seconds in the
// high 32 bits of the 8-byte little-endian payload.
func NewTimestamp(seconds, increment int32) Timestamp {
	return Timestamp{bits: FromBits(increment, seconds)}
}

// TimestampFromBits rebuilds a Timestamp from its already-assembled 64-bit
// wire representation, as read directly off the wire by the decoder.
func TimestampFromBits(bits Int64) Timestamp {
	return Timestamp{bits: bits}
}

// Bits returns the Timestamp's 64-bit wire representation.
func (t Timestamp) Bits() Int64 {
	return t.bits
}

// Seconds returns the seconds-since-epoch half of the timestamp.
func (t Timestamp) Seconds() int32 {
	return t.bits.High()
}

// Increment returns the per-second ordinal half of the timestamp.
func (t Timestamp) Increment() int32 {
	return t.bits.Low()
}

// Compare orders two Timestamps the way MongoDB orders them: by seconds,
// then by increment.
func (t Timestamp) Compare(other Timestamp) int {
	return t.bits.Compare(other.bits)
}
