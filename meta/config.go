// Package meta implements the locator: it compiles a token pattern, picks a
// search strategy for it and scans input for the first offset at which the
// pattern matches.
//
// Strategies:
//   - UseEmpty: the pattern accepts the empty prefix, every search hits at once
//   - UseScan: try the matcher at every offset
//   - UsePrefilter: jump between prefilter candidates and verify each one
//   - UseLiteral: the pattern is a plain literal, prefilter hits are matches
//
// All strategies return exactly the offsets a plain scan would.
package meta

import "go.uber.org/zap"

// Config controls locator behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // always scan offset by offset
//	engine, err := meta.CompileWithConfig("d+u", "id", config)
type Config struct {
	// EnablePrefilter enables prefix-based candidate skipping.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the shortest literal prefix searched as a substring.
	// Shorter literal prefixes fall back to a single-byte scan.
	// Default: 1
	MinLiteralLen int

	// MaxTokens limits the length of token patterns. Zero means unlimited.
	// Default: 0
	MaxTokens int

	// Logger receives debug events about compilation and release.
	// Default: nil (no logging)
	Logger *zap.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MinLiteralLen:   1,
		MaxTokens:       0,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MinLiteralLen: 1 to 64 (when EnablePrefilter is set)
//   - MaxTokens: 0 to 1<<20
func (c Config) Validate() error {
	if c.EnablePrefilter && (c.MinLiteralLen < 1 || c.MinLiteralLen > 64) {
		return &ConfigError{
			Field:   "MinLiteralLen",
			Message: "must be between 1 and 64",
		}
	}
	if c.MaxTokens < 0 || c.MaxTokens > 1<<20 {
		return &ConfigError{
			Field:   "MaxTokens",
			Message: "must be between 0 and 1048576",
		}
	}
	return nil
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "tokenpat: invalid config: " + e.Field + ": " + e.Message
}
