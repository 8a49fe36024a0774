package meta

import "sync/atomic"

// MatchPrefix reports whether the pattern matches a prefix of text,
// starting at offset 0 only.
func (e *Engine) MatchPrefix(text []byte) bool {
	return e.graph.Match(text)
}

// IsMatch reports whether the pattern matches at any offset of text.
func (e *Engine) IsMatch(text []byte) bool {
	start, _ := e.FindAt(text, 0)
	return start >= 0
}

// Find returns the span of the first match in text, or (-1, -1).
func (e *Engine) Find(text []byte) (start, end int) {
	return e.FindAt(text, 0)
}

// FindAt scans offsets at, at+1, ..., len(text) and returns the span of the
// first one where the pattern matches, or (-1, -1).
func (e *Engine) FindAt(text []byte, at int) (start, end int) {
	if at < 0 || at > len(text) || e.graph.Released() {
		return -1, -1
	}
	atomic.AddUint64(&e.stats.Searches, 1)

	switch e.strategy {
	case UseEmpty:
		return at, at
	case UseLiteral:
		return e.findLiteral(text, at)
	case UsePrefilter:
		return e.findPrefilter(text, at)
	default:
		return e.findScan(text, at)
	}
}

// matchAt runs the matcher at pos and returns the absolute match end or -1.
func (e *Engine) matchAt(text []byte, pos int) int {
	atomic.AddUint64(&e.stats.Verifications, 1)
	n := e.graph.MatchEnd(e.graph.Root(), text[pos:])
	if n < 0 {
		return -1
	}
	return pos + n
}

func (e *Engine) findScan(text []byte, at int) (int, int) {
	for pos := at; pos <= len(text); pos++ {
		if end := e.matchAt(text, pos); end >= 0 {
			return pos, end
		}
	}
	return -1, -1
}

func (e *Engine) findPrefilter(text []byte, at int) (int, int) {
	for pos := at; pos < len(text); {
		cand := e.prefilter.Find(text, pos)
		if cand < 0 {
			break
		}
		if end := e.matchAt(text, cand); end >= 0 {
			atomic.AddUint64(&e.stats.PrefilterHits, 1)
			return cand, end
		}
		atomic.AddUint64(&e.stats.PrefilterMisses, 1)
		pos = cand + 1
	}
	return -1, -1
}

func (e *Engine) findLiteral(text []byte, at int) (int, int) {
	cand := e.prefilter.Find(text, at)
	if cand < 0 {
		return -1, -1
	}
	atomic.AddUint64(&e.stats.PrefilterHits, 1)
	return cand, cand + e.prefilter.LiteralLen()
}

// FindAll returns the spans of successive non-overlapping matches.
// If n > 0, at most n spans are returned. An empty match advances the
// search by one byte.
func (e *Engine) FindAll(text []byte, n int) [][2]int {
	if n == 0 {
		return nil
	}
	var spans [][2]int
	for at := 0; at <= len(text); {
		start, end := e.FindAt(text, at)
		if start < 0 {
			break
		}
		spans = append(spans, [2]int{start, end})
		if n > 0 && len(spans) >= n {
			break
		}
		if end > start {
			at = end
		} else {
			at = end + 1
		}
	}
	return spans
}

// Count returns the number of non-overlapping matches, up to n if n > 0.
func (e *Engine) Count(text []byte, n int) int {
	return len(e.FindAll(text, n))
}
