package cmd

import (
	"github.com/coregx/tokenpat"
	"github.com/coregx/tokenpat/meta"
)

type match struct {
	start, end int
	name       string
}

// matcher finds matches within a single line. With all set it returns every
// non-overlapping match, otherwise at most the first.
type matcher interface {
	find(line []byte, all bool) []match
	stats() meta.Stats
}

type patternMatcher struct {
	p *tokenpat.Pattern
}

func (m patternMatcher) find(line []byte, all bool) []match {
	n := 1
	if all {
		n = -1
	}
	locs := m.p.FindAllIndex(line, n)
	if len(locs) == 0 {
		return nil
	}
	out := make([]match, len(locs))
	for i, loc := range locs {
		out[i] = match{start: loc[0], end: loc[1], name: m.p.Name()}
	}
	return out
}

func (m patternMatcher) stats() meta.Stats {
	return m.p.Stats()
}

type setMatcher struct {
	s *tokenpat.Set
}

func (m setMatcher) find(line []byte, all bool) []match {
	var out []match
	for pos := 0; pos <= len(line); {
		i, loc := m.s.FindIndex(line[pos:])
		if i < 0 {
			break
		}
		out = append(out, match{start: pos + loc[0], end: pos + loc[1], name: m.s.Pattern(i).Name()})
		if !all {
			break
		}
		if loc[1] > loc[0] {
			pos += loc[1]
		} else {
			pos += loc[0] + 1
		}
	}
	return out
}

func (m setMatcher) stats() meta.Stats {
	return m.s.Stats()
}
