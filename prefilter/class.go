package prefilter

import "github.com/coregx/tokenpat/simd"

// Digit finds candidates for patterns whose first unit is the digit class.
// A digit is only a candidate; the matcher must verify it.
type Digit struct{}

// NewDigit creates a prefilter for digit-led patterns.
func NewDigit() *Digit {
	return &Digit{}
}

// Find returns the index of the first digit at or after start.
func (p *Digit) Find(haystack []byte, start int) int {
	return simd.MemchrDigitAt(haystack, start)
}

// IsComplete returns false; a digit does not guarantee a match.
func (p *Digit) IsComplete() bool {
	return false
}

// LiteralLen returns 0.
func (p *Digit) LiteralLen() int {
	return 0
}

// HeapBytes returns 0.
func (p *Digit) HeapBytes() int {
	return 0
}

// Upper finds candidates for patterns whose first unit is the uppercase class.
type Upper struct{}

// NewUpper creates a prefilter for uppercase-led patterns.
func NewUpper() *Upper {
	return &Upper{}
}

// Find returns the index of the first uppercase letter at or after start.
func (p *Upper) Find(haystack []byte, start int) int {
	return simd.MemchrUpperAt(haystack, start)
}

// IsComplete returns false.
func (p *Upper) IsComplete() bool {
	return false
}

// LiteralLen returns 0.
func (p *Upper) LiteralLen() int {
	return 0
}

// HeapBytes returns 0.
func (p *Upper) HeapBytes() int {
	return 0
}
