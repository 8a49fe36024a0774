package graph

import (
	"fmt"
	"strings"

	"github.com/coregx/tokenpat/internal/sparse"
)

// NodeID uniquely identifies a node inside its graph's arena.
type NodeID uint32

// InvalidNode represents an invalid/uninitialized node ID
const InvalidNode NodeID = 0xFFFFFFFF

// NodeKind identifies which class of byte a node consumes.
type NodeKind uint8

const (
	// KindRoot is the synthetic entry node. It consumes no input.
	KindRoot NodeKind = iota

	// KindLiteral consumes exactly one byte equal to the node's literal
	KindLiteral

	// KindUpper consumes one ASCII uppercase letter [A-Z]
	KindUpper

	// KindDigit consumes one ASCII digit [0-9]
	KindDigit
)

// String returns a human-readable representation of the NodeKind
func (k NodeKind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindLiteral:
		return "Literal"
	case KindUpper:
		return "Upper"
	case KindDigit:
		return "Digit"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Node is a single compiled token with its ordered outgoing edges.
// Edges may repeat and may point back at the node itself.
type Node struct {
	id    NodeID
	kind  NodeKind
	lit   byte
	edges []NodeID
}

// ID returns the node's identifier
func (n *Node) ID() NodeID {
	return n.id
}

// Kind returns the node's class
func (n *Node) Kind() NodeKind {
	return n.kind
}

// Literal returns the literal byte for KindLiteral nodes.
// Returns (0, false) for every other kind.
func (n *Node) Literal() (byte, bool) {
	if n.kind == KindLiteral {
		return n.lit, true
	}
	return 0, false
}

// Edges returns the outgoing edges in try order.
// The returned slice must not be modified.
func (n *Node) Edges() []NodeID {
	return n.edges
}

// IsTerminal reports whether the node has no outgoing edges (accepting).
func (n *Node) IsTerminal() bool {
	return len(n.edges) == 0
}

// HasSelfLoop reports whether any edge targets the node itself.
func (n *Node) HasSelfLoop() bool {
	for _, e := range n.edges {
		if e == n.id {
			return true
		}
	}
	return false
}

// Accepts reports whether b satisfies the node's class.
// The root consumes nothing and accepts no byte.
func (n *Node) Accepts(b byte) bool {
	switch n.kind {
	case KindLiteral:
		return b == n.lit
	case KindUpper:
		return b >= 'A' && b <= 'Z'
	case KindDigit:
		return b >= '0' && b <= '9'
	default:
		return false
	}
}

// Token returns the token text the node was compiled from: "u", "d",
// the literal byte, or "" for the root.
func (n *Node) Token() string {
	switch n.kind {
	case KindLiteral:
		return string(n.lit)
	case KindUpper:
		return "u"
	case KindDigit:
		return "d"
	default:
		return ""
	}
}

// String returns a human-readable representation of the node
func (n *Node) String() string {
	var sb strings.Builder
	switch n.kind {
	case KindLiteral:
		fmt.Fprintf(&sb, "Node(%d, Literal %q", n.id, n.lit)
	default:
		fmt.Fprintf(&sb, "Node(%d, %s", n.id, n.kind)
	}
	if len(n.edges) > 0 {
		sb.WriteString(" ->")
		for _, e := range n.edges {
			fmt.Fprintf(&sb, " %d", e)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// Graph is a compiled token pattern: a name plus an arena of nodes with a
// single root. A Graph is immutable after Build and safe for concurrent
// matching until Release is called.
type Graph struct {
	name     string
	nodes    []Node
	root     NodeID
	released bool
}

// Name returns the diagnostic name given at build time
func (g *Graph) Name() string {
	return g.name
}

// Root returns the entry node ID
func (g *Graph) Root() NodeID {
	return g.root
}

// Node returns the node with the given ID.
// Returns nil if the ID is invalid or the graph was released.
func (g *Graph) Node(id NodeID) *Node {
	if id == InvalidNode || int(id) >= len(g.nodes) {
		return nil
	}
	return &g.nodes[id]
}

// Len returns the number of nodes owned by the graph (0 after Release)
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Released reports whether Release has been called
func (g *Graph) Released() bool {
	return g.released
}

// RootTerminal reports whether the root has no edges other than zero-width
// self-loops, i.e. the graph accepts the empty prefix of every input.
func (g *Graph) RootTerminal() bool {
	r := g.Node(g.root)
	if r == nil {
		return false
	}
	for _, e := range r.edges {
		if e != r.id {
			return false
		}
	}
	return true
}

// Iter returns an iterator over all nodes in arena order
func (g *Graph) Iter() *NodeIter {
	return &NodeIter{g: g}
}

// NodeIter is an iterator over graph nodes
type NodeIter struct {
	g   *Graph
	pos int
}

// Next returns the next node, or nil when iteration is complete.
func (it *NodeIter) Next() *Node {
	if it.pos >= len(it.g.nodes) {
		return nil
	}
	n := &it.g.nodes[it.pos]
	it.pos++
	return n
}

// HasNext returns true if there are more nodes to iterate
func (it *NodeIter) HasNext() bool {
	return it.pos < len(it.g.nodes)
}

// Walk calls fn for every node reachable from the root, depth first in
// edge order, visiting each node exactly once even when edges form cycles.
// Walking stops early if fn returns false.
func (g *Graph) Walk(fn func(*Node) bool) {
	if g.Node(g.root) == nil {
		return
	}

	visited := sparse.New[NodeID](len(g.nodes))
	stack := []NodeID{g.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visited.Insert(id) {
			continue
		}
		n := &g.nodes[id]
		if !fn(n) {
			return
		}
		// Push in reverse so the first edge is explored first.
		for i := len(n.edges) - 1; i >= 0; i-- {
			if next := n.edges[i]; !visited.Contains(next) {
				stack = append(stack, next)
			}
		}
	}
}

// Reachable returns the number of distinct nodes reachable from the root.
func (g *Graph) Reachable() int {
	count := 0
	g.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Release frees every node owned by the graph and returns how many were
// freed. The arena is swept once, so self-loops and repeated edges into the
// same node never cause a node to be freed twice. Calling Release again
// returns 0. Release must not run concurrently with matching.
func (g *Graph) Release() int {
	if g.released {
		return 0
	}
	freed := 0
	for i := range g.nodes {
		g.nodes[i].edges = nil
		freed++
	}
	g.nodes = nil
	g.root = InvalidNode
	g.released = true
	return freed
}

// Tokens reconstructs the canonical token string for a chain-shaped graph,
// as produced by Compile. Branching graphs render only their first path.
func (g *Graph) Tokens() string {
	var sb strings.Builder
	visited := sparse.New[NodeID](len(g.nodes))
	id := g.root
	for {
		n := g.Node(id)
		if n == nil || !visited.Insert(id) {
			break
		}
		sb.WriteString(n.Token())
		next := InvalidNode
		for _, e := range n.edges {
			if e == id {
				sb.WriteByte('+')
			} else if next == InvalidNode {
				next = e
			}
		}
		id = next
	}
	return sb.String()
}

// String returns a human-readable representation of the graph
func (g *Graph) String() string {
	if g.released {
		return fmt.Sprintf("Graph{name: %q, released}", g.name)
	}
	return fmt.Sprintf("Graph{name: %q, nodes: %d, root: %d}", g.name, len(g.nodes), g.root)
}
