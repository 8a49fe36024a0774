package prefilter

import (
	"github.com/coregx/tokenpat/graph"
	"github.com/coregx/tokenpat/simd"
)

// ByteSet finds candidates for several patterns at once by the set of bytes
// any of them can start with. It serves pattern sets whose members do not
// all begin with a literal.
type ByteSet struct {
	table *[256]bool
	count int
}

// NewByteSet builds a first-byte prefilter from the prefixes of several
// patterns. Returns nil if any prefix has no known first byte (a pattern
// that branches at the root or matches the empty string).
func NewByteSet(prefixes []graph.Prefix) *ByteSet {
	if len(prefixes) == 0 {
		return nil
	}
	table := new([256]bool)
	for _, p := range prefixes {
		switch {
		case len(p.Literal) > 0:
			table[p.Literal[0]] = true
		case p.Lead == graph.KindDigit:
			for b := '0'; b <= '9'; b++ {
				table[b] = true
			}
		case p.Lead == graph.KindUpper:
			for b := 'A'; b <= 'Z'; b++ {
				table[b] = true
			}
		default:
			return nil
		}
	}

	count := 0
	for _, ok := range table {
		if ok {
			count++
		}
	}
	return &ByteSet{table: table, count: count}
}

// Find returns the index of the first possible start byte at or after start.
func (p *ByteSet) Find(haystack []byte, start int) int {
	return simd.MemchrInTableAt(haystack, p.table, start)
}

// IsComplete returns false; a start byte is only a candidate.
func (p *ByteSet) IsComplete() bool {
	return false
}

// LiteralLen returns 0.
func (p *ByteSet) LiteralLen() int {
	return 0
}

// HeapBytes returns the size of the byte table.
func (p *ByteSet) HeapBytes() int {
	return len(p.table)
}

// Len returns the number of distinct start bytes.
func (p *ByteSet) Len() int {
	return p.count
}
