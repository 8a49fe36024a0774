package graph

// MatchFrom reports whether some path starting at node id consumes a prefix
// of text and ends at a node with no outgoing edges. Trailing input after
// that node is ignored.
//
// A released graph never matches.
func (g *Graph) MatchFrom(id NodeID, text []byte) bool {
	return g.MatchEnd(id, text) >= 0
}

// Match reports whether the graph matches a prefix of text from its root.
func (g *Graph) Match(text []byte) bool {
	return g.MatchEnd(g.root, text) >= 0
}

// MatchEnd is like MatchFrom but returns the number of bytes consumed on the
// first accepting path, or -1 if there is none.
func (g *Graph) MatchEnd(id NodeID, text []byte) int {
	if g.released {
		return -1
	}
	return g.match(id, text, 0)
}

// match walks the graph recursively:
//  1. an absent node succeeds without consuming
//  2. a consuming node needs one more byte of its class, else the subtree fails
//  3. the root passes text on untouched, other nodes consume one byte
//  4. edges are tried in insertion order and the first success wins
//  5. a node without edges accepts; a node whose edges all fail rejects
//
// The root's own self-loops are zero-width and are skipped entirely, so they
// neither recurse nor count as outgoing edges.
func (g *Graph) match(id NodeID, text []byte, pos int) int {
	n := g.Node(id)
	if n == nil {
		return pos
	}

	if n.kind != KindRoot {
		if pos >= len(text) || !n.Accepts(text[pos]) {
			return -1
		}
		pos++
	}

	tried := false
	for _, next := range n.edges {
		if next == id && n.kind == KindRoot {
			continue
		}
		tried = true
		if end := g.match(next, text, pos); end >= 0 {
			return end
		}
	}
	if !tried {
		return pos
	}
	return -1
}
