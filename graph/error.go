// Package graph provides the compiled representation of token patterns and
// the recursive matcher that walks it.
//
// A token pattern such as "d+u" compiles into a small graph of nodes stored
// in an arena and addressed by NodeID. Every graph has exactly one root node
// of kind KindRoot that consumes no input. Each other node consumes one byte
// of a given class and lists its successors in try order. The "+" modifier
// is encoded as a self-loop edge, so graphs may be cyclic.
package graph

import (
	"errors"
	"fmt"
)

// Common graph errors
var (
	// ErrTooManyTokens indicates the token pattern exceeds the configured limit
	ErrTooManyTokens = errors.New("too many tokens")

	// ErrInvalidNode indicates a node ID outside the graph arena
	ErrInvalidNode = errors.New("invalid node")

	// ErrReleased indicates the graph was already released
	ErrReleased = errors.New("graph released")
)

// CompileError wraps compilation errors with the offending token pattern
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("token pattern compilation failed for %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("token pattern compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError represents an error during graph construction via the Builder API
type BuildError struct {
	Message string
	NodeID  NodeID
	Err     error // optional sentinel, e.g. ErrInvalidNode
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.NodeID != InvalidNode {
		return fmt.Sprintf("graph build error at node %d: %s", e.NodeID, e.Message)
	}
	return fmt.Sprintf("graph build error: %s", e.Message)
}

// Unwrap returns the underlying sentinel, if any
func (e *BuildError) Unwrap() error {
	return e.Err
}
