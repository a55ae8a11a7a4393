package value

import "encoding/base64"

// Binary is an opaque byte payload tagged with a subtype (§3.1).
type Binary struct {
	Subtype byte
	Data    []byte
}

// Kind implements Value.
func (Binary) Kind() Kind { return KindBinary }

// NewBinary constructs a Binary value from a subtype and payload.
func NewBinary(subtype byte, data []byte) Binary {
	return Binary{Subtype: subtype, Data: data}
}

// Base64 renders the payload as standard base64, a debugging/interop
// accessor of this package; the original BSON extension's Binary::toString
// renders a raw binary string instead. It does not affect encoding.
func (b Binary) Base64() string {
	return base64.StdEncoding.EncodeToString(b.Data)
}
