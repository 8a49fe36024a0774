package graph

// Repeat is the modifier byte meaning "the preceding unit may repeat".
const Repeat = '+'

// CompilerConfig configures token pattern compilation
type CompilerConfig struct {
	// MaxTokens limits the number of units and modifiers in a pattern.
	// Zero means unlimited.
	MaxTokens int
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		MaxTokens: 0,
	}
}

// Compiler compiles token strings into graphs
type Compiler struct {
	config CompilerConfig
}

// NewCompiler creates a new compiler with the given configuration
func NewCompiler(config CompilerConfig) *Compiler {
	return &Compiler{config: config}
}

// NewDefaultCompiler creates a new compiler with default configuration
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile translates a token string into a graph named name.
//
// Every byte other than '+' is a unit: 'u' is an uppercase letter, 'd' is a
// digit, and anything else is that literal byte. '+' adds a self-loop on the
// most recent unit. The result is a chain from the root through one node per
// unit. An empty pattern yields a terminal root, and a leading '+' loops the
// root onto itself, which matching treats as a no-op.
func (c *Compiler) Compile(pattern, name string) (*Graph, error) {
	if c.config.MaxTokens > 0 && len(pattern) > c.config.MaxTokens {
		return nil, &CompileError{
			Pattern: pattern,
			Err:     ErrTooManyTokens,
		}
	}

	b := NewBuilderWithCapacity(len(pattern) + 1)
	cursor := b.AddRoot()

	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		if ch == Repeat {
			if err := b.AddEdge(cursor, cursor); err != nil {
				return nil, &CompileError{Pattern: pattern, Err: err}
			}
			continue
		}

		next := addUnit(b, ch)
		if err := b.AddEdge(cursor, next); err != nil {
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
		cursor = next
	}

	g, err := b.Build(name)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return g, nil
}

// addUnit adds the node for a single non-modifier token byte.
func addUnit(b *Builder, ch byte) NodeID {
	switch ch {
	case 'u':
		return b.AddUpper()
	case 'd':
		return b.AddDigit()
	default:
		return b.AddLiteral(ch)
	}
}

// Compile compiles pattern with the default configuration.
func Compile(pattern, name string) (*Graph, error) {
	return NewDefaultCompiler().Compile(pattern, name)
}
