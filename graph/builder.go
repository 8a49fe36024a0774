package graph

import (
	"fmt"

	"github.com/coregx/tokenpat/internal/conv"
)

// Builder constructs graphs incrementally using a low-level API.
// This provides full control over graph construction and is used by the Compiler.
type Builder struct {
	nodes []Node
	root  NodeID
}

// NewBuilder creates a new graph builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(8)
}

// NewBuilderWithCapacity creates a new graph builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		nodes: make([]Node, 0, capacity),
		root:  InvalidNode,
	}
}

func (b *Builder) add(kind NodeKind, lit byte) NodeID {
	id := NodeID(conv.Index(len(b.nodes)))
	b.nodes = append(b.nodes, Node{
		id:   id,
		kind: kind,
		lit:  lit,
	})
	return id
}

// AddRoot adds the empty entry node and makes it the graph's root.
func (b *Builder) AddRoot() NodeID {
	id := b.add(KindRoot, 0)
	if b.root == InvalidNode {
		b.root = id
	}
	return id
}

// AddLiteral adds a node that consumes exactly the byte c
func (b *Builder) AddLiteral(c byte) NodeID {
	return b.add(KindLiteral, c)
}

// AddUpper adds a node that consumes one uppercase letter
func (b *Builder) AddUpper() NodeID {
	return b.add(KindUpper, 0)
}

// AddDigit adds a node that consumes one digit
func (b *Builder) AddDigit() NodeID {
	return b.add(KindDigit, 0)
}

// AddEdge appends an edge from -> to. Edges are tried in the order they
// were added. from == to adds a self-loop.
func (b *Builder) AddEdge(from, to NodeID) error {
	if int(from) >= len(b.nodes) {
		return &BuildError{
			Message: "edge source out of bounds",
			NodeID:  from,
			Err:     ErrInvalidNode,
		}
	}
	if int(to) >= len(b.nodes) {
		return &BuildError{
			Message: fmt.Sprintf("edge target %d out of bounds", to),
			NodeID:  from,
			Err:     ErrInvalidNode,
		}
	}
	n := &b.nodes[from]
	n.edges = append(n.edges, to)
	return nil
}

// Nodes returns the current number of nodes
func (b *Builder) Nodes() int {
	return len(b.nodes)
}

// Validate checks that the graph is well-formed:
//   - exactly one root node, and it is the start
//   - all edges point to nodes inside the arena
func (b *Builder) Validate() error {
	if b.root == InvalidNode {
		return &BuildError{Message: "root node not set", NodeID: InvalidNode}
	}

	for i := range b.nodes {
		n := &b.nodes[i]
		if n.kind == KindRoot && n.id != b.root {
			return &BuildError{
				Message: fmt.Sprintf("second root node (first is %d)", b.root),
				NodeID:  n.id,
			}
		}
		for j, e := range n.edges {
			if int(e) >= len(b.nodes) {
				return &BuildError{
					Message: fmt.Sprintf("invalid edge %d target %d", j, e),
					NodeID:  n.id,
					Err:     ErrInvalidNode,
				}
			}
		}
	}

	return nil
}

// Build finalizes and returns the constructed graph.
// The builder must not be reused afterwards.
func (b *Builder) Build(name string) (*Graph, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	g := &Graph{
		name:  name,
		nodes: b.nodes,
		root:  b.root,
	}
	b.nodes = nil
	b.root = InvalidNode
	return g, nil
}
