package prefilter

import "github.com/coregx/tokenpat/simd"

// Memchr finds candidates by a single leading literal byte.
type Memchr struct {
	needle   byte
	complete bool
}

func newMemchr(needle byte, complete bool) *Memchr {
	return &Memchr{needle: needle, complete: complete}
}

// Find returns the next occurrence of the leading byte at or after start.
func (p *Memchr) Find(haystack []byte, start int) int {
	return simd.MemchrAt(haystack, p.needle, start)
}

// IsComplete reports whether the pattern is exactly this one byte.
func (p *Memchr) IsComplete() bool {
	return p.complete
}

// LiteralLen returns 1 for a complete single-byte pattern.
func (p *Memchr) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// HeapBytes returns 0; the prefilter holds no heap memory.
func (p *Memchr) HeapBytes() int {
	return 0
}

// Memmem finds candidates by a leading literal substring.
type Memmem struct {
	needle   []byte
	complete bool
}

func newMemmem(needle []byte, complete bool) *Memmem {
	n := make([]byte, len(needle))
	copy(n, needle)
	return &Memmem{needle: n, complete: complete}
}

// Find returns the next occurrence of the literal prefix at or after start.
func (p *Memmem) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	return simd.MemmemAt(haystack, p.needle, start)
}

// IsComplete reports whether the pattern is exactly this literal.
func (p *Memmem) IsComplete() bool {
	return p.complete
}

// LiteralLen returns the literal length for complete patterns.
func (p *Memmem) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

// HeapBytes returns the size of the copied needle.
func (p *Memmem) HeapBytes() int {
	return cap(p.needle)
}

// Needle returns the literal prefix being searched for.
func (p *Memmem) Needle() []byte {
	return p.needle
}
