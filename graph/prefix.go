package graph

import "github.com/coregx/tokenpat/internal/sparse"

// Prefix describes what every match of a graph must start with.
type Prefix struct {
	// Literal holds the bytes every match begins with. It may be empty.
	Literal []byte

	// Lead is the class of the first consumed byte, or KindRoot when the
	// graph branches at the root or accepts the empty prefix.
	Lead NodeKind

	// Complete is true when Literal is the entire pattern: a loop-free
	// chain of literal nodes ending in a terminal node.
	Complete bool
}

// Prefix follows the graph from the root while the path is forced (a single
// outgoing edge and no repetition) and collects the literal bytes along it.
func (g *Graph) Prefix() Prefix {
	var p Prefix
	if g.Node(g.root) == nil {
		return p
	}

	visited := sparse.New[NodeID](len(g.nodes))
	cur := g.root
	for visited.Insert(cur) {
		n := &g.nodes[cur]
		if n.kind != KindRoot && n.HasSelfLoop() {
			return p
		}

		next := InvalidNode
		forward := 0
		for _, e := range n.edges {
			if e == cur {
				continue
			}
			forward++
			next = e
		}

		switch {
		case forward == 0:
			p.Complete = len(p.Literal) > 0 && n.kind == KindLiteral
			return p
		case forward > 1:
			return p
		}

		nx := &g.nodes[next]
		if nx.kind == KindRoot || visited.Contains(next) {
			return p
		}
		if p.Lead == KindRoot {
			p.Lead = nx.kind
		}
		if nx.kind != KindLiteral {
			return p
		}
		p.Literal = append(p.Literal, nx.lit)
		cur = next
	}
	return p
}
