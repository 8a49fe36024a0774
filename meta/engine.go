package meta

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/coregx/tokenpat/graph"
	"github.com/coregx/tokenpat/prefilter"
)

// Engine is a compiled pattern together with its search strategy.
//
// An Engine is safe for concurrent searches. Release must not run
// concurrently with searches.
type Engine struct {
	graph     *graph.Graph
	tokens    string
	prefilter prefilter.Prefilter
	strategy  Strategy
	config    Config
	log       *zap.Logger
	stats     Stats
}

// Stats tracks execution statistics. Counters are updated atomically.
type Stats struct {
	// Searches counts FindAt calls
	Searches uint64

	// Verifications counts matcher runs at a candidate or scanned offset
	Verifications uint64

	// PrefilterHits counts prefilter candidates that verified as matches
	PrefilterHits uint64

	// PrefilterMisses counts prefilter candidates that failed verification
	PrefilterMisses uint64
}

// Compile compiles a token pattern with the default configuration.
func Compile(tokens, name string) (*Engine, error) {
	return CompileWithConfig(tokens, name, DefaultConfig())
}

// CompileWithConfig compiles a token pattern with a custom configuration.
func CompileWithConfig(tokens, name string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := graph.NewCompiler(graph.CompilerConfig{MaxTokens: config.MaxTokens})
	g, err := c.Compile(tokens, name)
	if err != nil {
		return nil, err
	}
	e, err := NewEngine(g, config)
	if err != nil {
		return nil, err
	}
	e.tokens = tokens
	return e, nil
}

// NewEngine wraps an already built graph.
func NewEngine(g *graph.Graph, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if g.Released() {
		return nil, graph.ErrReleased
	}

	var pf prefilter.Prefilter
	if config.EnablePrefilter {
		pf = prefilter.New(g.Prefix(), config.MinLiteralLen)
	}
	strategy := SelectStrategy(g, pf)

	log := config.logger()
	log.Debug("compiled token pattern",
		zap.String("name", g.Name()),
		zap.Int("nodes", g.Len()),
		zap.Stringer("strategy", strategy))

	return &Engine{
		graph:     g,
		tokens:    g.Tokens(),
		prefilter: pf,
		strategy:  strategy,
		config:    config,
		log:       log,
	}, nil
}

// Graph returns the compiled graph.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// Tokens returns the token pattern the engine was compiled from.
func (e *Engine) Tokens() string {
	return e.tokens
}

// Strategy returns the selected search strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Prefilter returns the prefilter in use, or nil.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:        atomic.LoadUint64(&e.stats.Searches),
		Verifications:   atomic.LoadUint64(&e.stats.Verifications),
		PrefilterHits:   atomic.LoadUint64(&e.stats.PrefilterHits),
		PrefilterMisses: atomic.LoadUint64(&e.stats.PrefilterMisses),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Searches, 0)
	atomic.StoreUint64(&e.stats.Verifications, 0)
	atomic.StoreUint64(&e.stats.PrefilterHits, 0)
	atomic.StoreUint64(&e.stats.PrefilterMisses, 0)
}

// Release frees the compiled graph and returns the number of nodes freed.
// Later searches report no match.
func (e *Engine) Release() int {
	freed := e.graph.Release()
	if freed > 0 {
		e.log.Debug("released token pattern",
			zap.String("name", e.graph.Name()),
			zap.Int("nodes", freed))
	}
	return freed
}
