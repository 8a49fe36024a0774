// Package prefilter provides fast candidate filtering for token pattern search.
//
// A prefilter quickly rejects start offsets that cannot begin a match. Every
// match of a compiled pattern must begin with the pattern's forced prefix
// (see graph.Prefix), so scanning for that prefix with the simd primitives
// skips whole regions of input instead of running the matcher at each offset.
//
// Selection, in order of preference:
//   - literal prefix of MinLiteralLen or more bytes, one byte → Memchr
//   - literal prefix, several bytes → Memmem
//   - leading digit class → Digit
//   - leading uppercase class → Upper
//   - nothing usable → nil (scan every offset)
//
// Several patterns searched together use an Aho-Corasick automaton over
// their literal prefixes (see NewAhoCorasick), or a table of possible first
// bytes when some member starts with a class (see NewByteSet).
package prefilter

import "github.com/coregx/tokenpat/graph"

// Prefilter finds candidate start offsets before the matcher runs.
type Prefilter interface {
	// Find returns the first candidate offset at or after start,
	// or -1 if there is none.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is guaranteed to be a match,
	// so verification can be skipped.
	IsComplete() bool

	// LiteralLen returns the length of the match when IsComplete is true,
	// and 0 otherwise.
	LiteralLen() int

	// HeapBytes returns the heap memory held by the prefilter.
	HeapBytes() int
}

// New selects a prefilter for a graph prefix.
// Literal prefixes shorter than minLiteralLen fall back to the leading class.
// Returns nil if no prefilter applies.
func New(p graph.Prefix, minLiteralLen int) Prefilter {
	if len(p.Literal) > 0 && len(p.Literal) >= minLiteralLen {
		if len(p.Literal) == 1 {
			return newMemchr(p.Literal[0], p.Complete)
		}
		return newMemmem(p.Literal, p.Complete)
	}

	switch p.Lead {
	case graph.KindDigit:
		return NewDigit()
	case graph.KindUpper:
		return NewUpper()
	case graph.KindLiteral:
		// Literal shorter than the configured minimum: still exact on the
		// first byte, but never complete.
		return newMemchr(p.Literal[0], false)
	}
	return nil
}
