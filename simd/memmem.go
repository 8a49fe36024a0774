package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// The rarest byte of the needle (by ByteFrequencies) is located with Memchr and
// each candidate is verified in full.
//
// Example:
//
//	pos := simd.Memmem([]byte("hello world"), []byte("world")) // 6
func Memmem(haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(haystack):
		return -1
	case len(needle) == 1:
		return Memchr(haystack, needle[0])
	}

	rare, rareIdx := selectRareByte(needle)
	for from := rareIdx; from < len(haystack); {
		cand := Memchr(haystack[from:], rare)
		if cand < 0 {
			return -1
		}
		start := from + cand - rareIdx
		if start+len(needle) > len(haystack) {
			return -1
		}
		if bytes.Equal(haystack[start:start+len(needle)], needle) {
			return start
		}
		from += cand + 1
	}
	return -1
}

// MemmemAt is like Memmem but starts at 'at' and returns an absolute index.
func MemmemAt(haystack, needle []byte, at int) int {
	if at < 0 || at > len(haystack) {
		return -1
	}
	pos := Memmem(haystack[at:], needle)
	if pos < 0 {
		return -1
	}
	return pos + at
}

// selectRareByte picks the needle byte least likely to occur in text.
// Ties go to the later byte, which tends to be more distinctive.
func selectRareByte(needle []byte) (byte, int) {
	best := len(needle) - 1
	for i := len(needle) - 2; i >= 0; i-- {
		if ByteRank(needle[i]) < ByteRank(needle[best]) {
			best = i
		}
	}
	return needle[best], best
}
