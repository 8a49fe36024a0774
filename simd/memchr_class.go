package simd

import (
	"encoding/binary"
	"math/bits"
)

// MemchrDigitAt returns the index of the first ASCII digit [0-9] at or after
// position 'at' in haystack, or -1 if no digit is found or 'at' is out of
// bounds.
//
// Example:
//
//	haystack := []byte("abc123def456")
//	simd.MemchrDigitAt(haystack, 0) // 3
//	simd.MemchrDigitAt(haystack, 6) // 9
func MemchrDigitAt(haystack []byte, at int) int {
	return memchrRangeAt(haystack, at, '0', '9')
}

// MemchrUpperAt returns the index of the first ASCII uppercase letter [A-Z]
// at or after position 'at' in haystack, or -1 if none is found.
func MemchrUpperAt(haystack []byte, at int) int {
	return memchrRangeAt(haystack, at, 'A', 'Z')
}

func memchrRangeAt(haystack []byte, at int, lo, hi byte) int {
	if at < 0 || at >= len(haystack) {
		return -1
	}
	var pos int
	if wordScan {
		pos = memchrRangeWord(haystack[at:], lo, hi)
	} else {
		pos = memchrRangeByte(haystack[at:], lo, hi)
	}
	if pos < 0 {
		return -1
	}
	return pos + at
}

func memchrRangeByte(haystack []byte, lo, hi byte) int {
	for i, b := range haystack {
		if b >= lo && b <= hi {
			return i
		}
	}
	return -1
}

// memchrRangeWord finds the first byte in [lo, hi] with lo >= 1 and hi < 0x7F.
//
// With the high bit of every byte cleared (b7 <= 0x7F), adding 0x80-lo sets
// the high bit exactly when b7 >= lo, and adding 0x80-(hi+1) sets it exactly
// when b7 > hi. Neither sum exceeds 0xFF, so no carry crosses a byte. Bytes
// whose original high bit was set are non-ASCII and excluded.
func memchrRangeWord(haystack []byte, lo, hi byte) int {
	n := len(haystack)
	addLo := uint64(0x80-lo) * lo8
	addHi := uint64(0x80-(hi+1)) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		w := binary.LittleEndian.Uint64(haystack[i:])
		low7 := w &^ hi8
		in := (low7 + addLo) &^ (low7 + addHi) &^ w & hi8
		if in != 0 {
			return i + bits.TrailingZeros64(in)/8
		}
	}
	for ; i < n; i++ {
		if b := haystack[i]; b >= lo && b <= hi {
			return i
		}
	}
	return -1
}

// MemchrInTable returns the index of the first byte b in haystack for which
// table[b] is true, or -1 if none is found.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}

// MemchrInTableAt is like MemchrInTable but starts the search at position
// 'at'. Returns -1 if 'at' is out of bounds.
func MemchrInTableAt(haystack []byte, table *[256]bool, at int) int {
	if at < 0 || at >= len(haystack) {
		return -1
	}
	if pos := MemchrInTable(haystack[at:], table); pos >= 0 {
		return pos + at
	}
	return -1
}
