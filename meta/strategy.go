package meta

import (
	"fmt"

	"github.com/coregx/tokenpat/graph"
	"github.com/coregx/tokenpat/prefilter"
)

// Strategy identifies how the locator searches for a pattern.
type Strategy int

const (
	// UseScan runs the matcher at every start offset.
	// Selected when no prefilter applies or prefiltering is disabled.
	UseScan Strategy = iota

	// UsePrefilter verifies only offsets reported by a prefilter.
	// Selected for patterns that start with a literal or a class.
	UsePrefilter

	// UseLiteral trusts the prefilter outright.
	// Selected for loop-free, all-literal patterns.
	UseLiteral

	// UseEmpty answers every search at its start offset.
	// Selected when the root has no outgoing edges.
	UseEmpty
)

// String returns a human-readable representation of the Strategy
func (s Strategy) String() string {
	switch s {
	case UseScan:
		return "UseScan"
	case UsePrefilter:
		return "UsePrefilter"
	case UseLiteral:
		return "UseLiteral"
	case UseEmpty:
		return "UseEmpty"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// SelectStrategy chooses the strategy for g given its prefilter (may be nil).
func SelectStrategy(g *graph.Graph, pf prefilter.Prefilter) Strategy {
	switch {
	case g.RootTerminal():
		return UseEmpty
	case pf == nil:
		return UseScan
	case pf.IsComplete():
		return UseLiteral
	default:
		return UsePrefilter
	}
}
