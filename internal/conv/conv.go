// Package conv provides checked integer conversions for graph indices.
//
// Node ids and sparse-set slots are uint32. These helpers narrow an int
// index after a bounds check and panic on overflow, since an index that does
// not fit means a graph outgrew its arena.
package conv

import "math"

// IntToUint32 converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// Index converts an arena index to a uint32 id. The value math.MaxUint32 is
// reserved as the invalid id, so the largest usable index is one below it.
// Panics if n is out of range.
func Index(n int) uint32 {
	if n < 0 || uint(n) >= math.MaxUint32 {
		panic("conv: arena index out of range")
	}
	return uint32(n)
}
