package prefilter

import (
	"bytes"
	"errors"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/tokenpat/simd"
)

// ErrNoLiterals is returned when a multi-literal prefilter has nothing to search for.
var ErrNoLiterals = errors.New("prefilter: no literals")

// AhoCorasick finds candidates for a group of patterns by the leftmost
// occurrence of any of their literal prefixes.
type AhoCorasick struct {
	auto     *ahocorasick.Automaton
	literals [][]byte
	first    *[256]bool
	bytes    int
}

// NewAhoCorasick builds a prefilter over the given literal prefixes.
// Every literal must be non-empty.
func NewAhoCorasick(literals [][]byte) (*AhoCorasick, error) {
	if len(literals) == 0 {
		return nil, ErrNoLiterals
	}

	builder := ahocorasick.NewBuilder()
	first := new([256]bool)
	total := 0
	for _, lit := range literals {
		if len(lit) == 0 {
			return nil, ErrNoLiterals
		}
		builder.AddPattern(lit)
		first[lit[0]] = true
		total += len(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &AhoCorasick{
		auto:     auto,
		literals: literals,
		first:    first,
		bytes:    total + len(first),
	}, nil
}

// Find returns the start of the leftmost literal occurrence at or after start.
//
// The automaton reports the occurrence that ends first, which is not the
// leftmost one when a literal contains another at a later offset ("1aa" and
// "a"). Bytes before the reported start that can begin a literal are checked
// directly.
func (p *AhoCorasick) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}

	head := haystack[:m.Start]
	for pos := start; pos < m.Start; pos++ {
		pos = simd.MemchrInTableAt(head, p.first, pos)
		if pos < 0 {
			break
		}
		if p.literalAt(haystack, pos) {
			return pos
		}
	}
	return m.Start
}

func (p *AhoCorasick) literalAt(haystack []byte, pos int) bool {
	for _, lit := range p.literals {
		if bytes.HasPrefix(haystack[pos:], lit) {
			return true
		}
	}
	return false
}

// IsComplete returns false; members still need verification.
func (p *AhoCorasick) IsComplete() bool {
	return false
}

// LiteralLen returns 0.
func (p *AhoCorasick) LiteralLen() int {
	return 0
}

// HeapBytes approximates the automaton size by the literal bytes it indexes
// plus the first-byte table.
func (p *AhoCorasick) HeapBytes() int {
	return p.bytes
}

// Literals returns the number of literal prefixes in the automaton.
func (p *AhoCorasick) Literals() int {
	return len(p.literals)
}
