// Package tokenpat provides a minimal token-based pattern matcher.
//
// A token pattern is a short string of units and modifiers:
//   - 'u' matches one ASCII uppercase letter
//   - 'd' matches one ASCII digit
//   - '+' lets the preceding unit repeat (one or more)
//   - any other byte matches itself
//
// Patterns compile into a small graph. Matching is prefix-based: a pattern
// matches when its units can be consumed from the start of the input, and
// any input left over is ignored. Find scans successive start offsets and
// reports the first one that matches.
//
// Basic usage:
//
//	p := tokenpat.MustCompile("d+u", "id")
//	p.MatchString("12A")         // true
//	p.FindFirst("abc123B2")      // 3, true
//	p.FindStringIndex("abc123B2") // [3 7]
//
// Patterns are safe for concurrent use. Release frees the compiled graph;
// a released pattern never matches.
//
// This is not a regular expression engine: there is no alternation,
// anchoring, grouping or escaping, and matches never need to consume the
// whole input.
package tokenpat

import (
	"github.com/coregx/tokenpat/meta"
)

// Pattern is a compiled token pattern.
type Pattern struct {
	engine *meta.Engine
	tokens string
	name   string
}

// Compile compiles a token pattern. name is a diagnostic label carried by
// the compiled pattern; it does not affect matching.
//
// Every token string is valid, so an error is only returned when a
// configured limit is exceeded.
func Compile(tokens, name string) (*Pattern, error) {
	return CompileWithConfig(tokens, name, meta.DefaultConfig())
}

// MustCompile is like Compile but panics on error.
func MustCompile(tokens, name string) *Pattern {
	p, err := Compile(tokens, name)
	if err != nil {
		panic("tokenpat: Compile(" + quote(tokens) + "): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := tokenpat.DefaultConfig()
//	config.EnablePrefilter = false
//	p, err := tokenpat.CompileWithConfig("d+u", "id", config)
func CompileWithConfig(tokens, name string, config meta.Config) (*Pattern, error) {
	engine, err := meta.CompileWithConfig(tokens, name, config)
	if err != nil {
		return nil, err
	}
	return &Pattern{
		engine: engine,
		tokens: tokens,
		name:   name,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

func quote(s string) string {
	return "`" + s + "`"
}

// Name returns the diagnostic name given at compile time.
func (p *Pattern) Name() string {
	return p.name
}

// String returns the token string used to compile the pattern.
func (p *Pattern) String() string {
	return p.tokens
}

// NumTokens returns the length of the token string.
func (p *Pattern) NumTokens() int {
	return len(p.tokens)
}

// NumNodes returns the number of compiled graph nodes, including the root.
// It is 0 after Release.
func (p *Pattern) NumNodes() int {
	return p.engine.Graph().Len()
}

// Strategy returns the search strategy chosen for the pattern.
func (p *Pattern) Strategy() meta.Strategy {
	return p.engine.Strategy()
}

// Stats returns the pattern's execution statistics.
func (p *Pattern) Stats() meta.Stats {
	return p.engine.Stats()
}

// Match reports whether the pattern matches a prefix of b, starting at
// offset 0. Trailing bytes after the match are ignored.
func (p *Pattern) Match(b []byte) bool {
	return p.engine.MatchPrefix(b)
}

// MatchString is like Match for a string.
//
// Example:
//
//	p := tokenpat.MustCompile("d+u", "id")
//	p.MatchString("1A1") // true: "1A" matches, the trailing "1" is ignored
//	p.MatchString("A1")  // false: 'A' is not a digit
func (p *Pattern) MatchString(s string) bool {
	return p.Match([]byte(s))
}

// FindFirst returns the first offset of s at which the pattern matches.
// ok is false if there is no such offset.
func (p *Pattern) FindFirst(s string) (offset int, ok bool) {
	start, _ := p.engine.Find([]byte(s))
	return start, start >= 0
}

// FindIndex returns a two-element slice holding the span of the first
// match in b: the match is b[loc[0]:loc[1]]. Returns nil if none is found.
func (p *Pattern) FindIndex(b []byte) (loc []int) {
	start, end := p.engine.Find(b)
	if start < 0 {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is like FindIndex for a string.
func (p *Pattern) FindStringIndex(s string) []int {
	return p.FindIndex([]byte(s))
}

// Find returns the text of the first match in b, or nil.
func (p *Pattern) Find(b []byte) []byte {
	start, end := p.engine.Find(b)
	if start < 0 {
		return nil
	}
	return b[start:end:end]
}

// FindString returns the text of the first match in s, or "".
// Use FindStringIndex to tell an empty match from no match.
func (p *Pattern) FindString(s string) string {
	start, end := p.engine.Find([]byte(s))
	if start < 0 {
		return ""
	}
	return s[start:end]
}

// FindAllIndex returns the spans of successive non-overlapping matches.
// If n >= 0, at most n spans are returned.
func (p *Pattern) FindAllIndex(b []byte, n int) [][]int {
	spans := p.engine.FindAll(b, n)
	if len(spans) == 0 {
		return nil
	}
	out := make([][]int, len(spans))
	for i, s := range spans {
		out[i] = []int{s[0], s[1]}
	}
	return out
}

// FindAllString returns the text of successive non-overlapping matches.
// If n >= 0, at most n matches are returned.
func (p *Pattern) FindAllString(s string, n int) []string {
	spans := p.engine.FindAll([]byte(s), n)
	if len(spans) == 0 {
		return nil
	}
	out := make([]string, len(spans))
	for i, sp := range spans {
		out[i] = s[sp[0]:sp[1]]
	}
	return out
}

// Count returns the number of non-overlapping matches in b.
// If n >= 0, counts at most n matches.
func (p *Pattern) Count(b []byte, n int) int {
	return p.engine.Count(b, n)
}

// Release frees every node of the compiled graph exactly once and returns
// how many were freed. Releasing twice returns 0. Release must not be called
// while other goroutines are matching with the pattern.
func (p *Pattern) Release() int {
	return p.engine.Release()
}
