package meta

import (
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/coregx/tokenpat/graph"
	"github.com/coregx/tokenpat/prefilter"
)

// ErrEmptySet is returned when a Set is built without members.
var ErrEmptySet = errors.New("tokenpat: empty pattern set")

// Set searches several engines at once and reports the earliest offset at
// which any of them matches. Ties go to the member added first.
type Set struct {
	engines   []*Engine
	prefilter prefilter.Prefilter
	stats     Stats
}

// NewSet builds a Set over engines. When prefiltering is enabled and every
// member starts with a literal, candidates come from one Aho-Corasick
// automaton over all the literal prefixes. Otherwise, if every member has a
// known first byte class, candidates come from a first-byte table.
func NewSet(engines []*Engine, config Config) (*Set, error) {
	if len(engines) == 0 {
		return nil, ErrEmptySet
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Set{engines: append([]*Engine(nil), engines...)}
	if config.EnablePrefilter {
		s.prefilter = setPrefilter(engines, config.logger())
	}
	config.logger().Debug("compiled pattern set",
		zap.Int("members", len(engines)),
		zap.Bool("prefilter", s.prefilter != nil))
	return s, nil
}

// setPrefilter prefers an Aho-Corasick automaton over the members' literal
// prefixes and falls back to a table of first bytes.
func setPrefilter(engines []*Engine, log *zap.Logger) prefilter.Prefilter {
	prefixes := make([]graph.Prefix, 0, len(engines))
	for _, e := range engines {
		if !e.graph.Released() {
			prefixes = append(prefixes, e.graph.Prefix())
		}
	}
	if len(prefixes) == 0 {
		return nil
	}

	if lits, ok := literalPrefixes(prefixes); ok {
		pf, err := prefilter.NewAhoCorasick(lits)
		if err == nil {
			return pf
		}
		log.Debug("pattern set literal prefilter unavailable", zap.Error(err))
	}
	if bs := prefilter.NewByteSet(prefixes); bs != nil {
		return bs
	}
	return nil
}

func literalPrefixes(prefixes []graph.Prefix) ([][]byte, bool) {
	lits := make([][]byte, 0, len(prefixes))
	for _, p := range prefixes {
		if len(p.Literal) == 0 {
			return nil, false
		}
		lits = append(lits, p.Literal)
	}
	return lits, true
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.engines)
}

// Engine returns the i-th member.
func (s *Set) Engine(i int) *Engine {
	return s.engines[i]
}

// HasPrefilter reports whether the set uses a literal prefilter.
func (s *Set) HasPrefilter() bool {
	return s.prefilter != nil
}

// Stats returns a snapshot of the set's execution statistics.
func (s *Set) Stats() Stats {
	return Stats{
		Searches:        atomic.LoadUint64(&s.stats.Searches),
		Verifications:   atomic.LoadUint64(&s.stats.Verifications),
		PrefilterHits:   atomic.LoadUint64(&s.stats.PrefilterHits),
		PrefilterMisses: atomic.LoadUint64(&s.stats.PrefilterMisses),
	}
}

// FindAt returns the member index and span of the earliest match at or
// after at, or (-1, -1, -1).
func (s *Set) FindAt(text []byte, at int) (index, start, end int) {
	if at < 0 || at > len(text) {
		return -1, -1, -1
	}
	atomic.AddUint64(&s.stats.Searches, 1)

	if s.prefilter == nil {
		for pos := at; pos <= len(text); pos++ {
			if i, e := s.matchAt(text, pos); i >= 0 {
				return i, pos, e
			}
		}
		return -1, -1, -1
	}

	for pos := at; pos < len(text); {
		cand := s.prefilter.Find(text, pos)
		if cand < 0 {
			break
		}
		if i, e := s.matchAt(text, cand); i >= 0 {
			atomic.AddUint64(&s.stats.PrefilterHits, 1)
			return i, cand, e
		}
		atomic.AddUint64(&s.stats.PrefilterMisses, 1)
		pos = cand + 1
	}
	return -1, -1, -1
}

// matchAt tries every live member at pos in order.
func (s *Set) matchAt(text []byte, pos int) (index, end int) {
	for i, e := range s.engines {
		if e.graph.Released() {
			continue
		}
		atomic.AddUint64(&s.stats.Verifications, 1)
		if n := e.graph.MatchEnd(e.graph.Root(), text[pos:]); n >= 0 {
			return i, pos + n
		}
	}
	return -1, -1
}
