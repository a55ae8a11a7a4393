// Package checksum computes content fingerprints for encoded BDoc buffers.
//
// Callers that cache or deduplicate encoded documents need a cheap, stable
// way to compare buffers without holding onto the full byte slice. Of
// computes the xxHash64 of an already-encoded document, the same hash
// family used elsewhere in the ecosystem for fast, collision-resistant
// content identification.
package checksum

import "github.com/cespare/xxhash/v2"

// Of computes the xxHash64 checksum of an encoded BDoc document.
//
// The checksum is a pure function of the bytes: encoding the same value
// twice (stable key order, identical options) yields the same checksum.
// It is not cryptographically secure and must not be used for anything
// beyond cache keys or change detection.
func Of(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// OfString computes the xxHash64 checksum of a raw element key or string
// payload, useful for building lookup tables over decoded document keys
// without re-hashing the full buffer.
func OfString(s string) uint64 {
	return xxhash.Sum64String(s)
}
