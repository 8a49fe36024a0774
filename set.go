package tokenpat

import "github.com/coregx/tokenpat/meta"

// Set searches several patterns together and reports the earliest match of
// any of them. When every member starts with a literal, candidates come from
// a single Aho-Corasick scan.
type Set struct {
	set      *meta.Set
	patterns []*Pattern
}

// NewSet builds a set from compiled patterns. Ties at the same offset go
// to the pattern listed first.
func NewSet(patterns ...*Pattern) (*Set, error) {
	return NewSetWithConfig(meta.DefaultConfig(), patterns...)
}

// NewSetWithConfig is like NewSet with a custom configuration.
func NewSetWithConfig(config meta.Config, patterns ...*Pattern) (*Set, error) {
	engines := make([]*meta.Engine, len(patterns))
	for i, p := range patterns {
		engines[i] = p.engine
	}
	s, err := meta.NewSet(engines, config)
	if err != nil {
		return nil, err
	}
	return &Set{set: s, patterns: append([]*Pattern(nil), patterns...)}, nil
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Pattern returns the i-th pattern.
func (s *Set) Pattern(i int) *Pattern {
	return s.patterns[i]
}

// Find returns the index of the pattern with the earliest match in text and
// the offset of that match. ok is false if no pattern matches.
func (s *Set) Find(text string) (index, offset int, ok bool) {
	i, start, _ := s.set.FindAt([]byte(text), 0)
	return i, start, i >= 0
}

// FindIndex returns the winning pattern index and the match span in b,
// or (-1, nil).
func (s *Set) FindIndex(b []byte) (index int, loc []int) {
	i, start, end := s.set.FindAt(b, 0)
	if i < 0 {
		return -1, nil
	}
	return i, []int{start, end}
}

// Match reports whether any pattern matches anywhere in text.
func (s *Set) Match(text string) bool {
	_, _, ok := s.Find(text)
	return ok
}

// Stats returns the set's execution statistics.
func (s *Set) Stats() meta.Stats {
	return s.set.Stats()
}
