package simd

import (
	"encoding/binary"
	"math/bits"
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o') // 4
func Memchr(haystack []byte, needle byte) int {
	if wordScan {
		return memchrWord(haystack, needle)
	}
	return memchrByte(haystack, needle)
}

// MemchrAt is like Memchr but starts at 'at' and returns an absolute index.
// Returns -1 if 'at' is out of bounds.
func MemchrAt(haystack []byte, needle byte, at int) int {
	if at < 0 || at >= len(haystack) {
		return -1
	}
	pos := Memchr(haystack[at:], needle)
	if pos < 0 {
		return -1
	}
	return pos + at
}

func memchrByte(haystack []byte, needle byte) int {
	for i, b := range haystack {
		if b == needle {
			return i
		}
	}
	return -1
}

// memchrWord broadcasts needle into every byte of a word, XORs it against
// eight haystack bytes at a time and detects the first zero byte with
// (v - 0x01..) & ^v & 0x80.. (Hacker's Delight). The lowest flagged byte is
// always exact; higher ones may be spurious and are ignored.
func memchrWord(haystack []byte, needle byte) int {
	n := len(haystack)
	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		x := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if found := (x - lo8) & ^x & hi8; found != 0 {
			return i + bits.TrailingZeros64(found)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
