// Package value implements BDoc's tagged value algebra: the closed set of
// variants a Document or Array element can hold.
//
// Value is a marker interface; every BDoc leaf kind plus Document and Array
// implement it. Variants are closed — adding a new BDoc kind means adding a
// new type here and a new Kind constant, the same way the teacher's format
// package enumerates a small closed set of encoding/compression kinds.
//
// Values are immutable from the codec's point of view: nothing in this
// package or in codec mutates a Value it was handed. Document and Array are
// pointer-shaped for cheap passing but their element slices are still only
// ever appended to, never mutated in place by the codec.
package value
