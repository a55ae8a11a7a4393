// Package endian provides the byte order primitives BDoc's wire format
// needs.
//
// This package combines ByteOrder and AppendByteOrder from encoding/binary
// into a unified EndianEngine interface, so every multi-byte read/write
// call site in the module goes through the same shape regardless of which
// byte order a given field uses.
//
// # Basic Usage
//
// BDoc's wire format is fixed little-endian, with one exception: the
// seconds half of an ObjectID is big-endian (§3.2, §4.4). Both engines are
// genuinely used: GetLittleEndianEngine() by the codec for every
// multi-byte field, GetBigEndianEngine() by objectid for that one field.
//
//	import "github.com/kilnbyte/bdoc/endian"
//
//	le := endian.GetLittleEndianEngine()
//	n := le.Uint32(buf)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
