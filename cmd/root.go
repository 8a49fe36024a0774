package cmd

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/coregx/tokenpat"
)

// Exit statuses follow grep.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

const stdinName = "(standard input)"

type options struct {
	lineNumber   bool
	onlyMatching bool
	count        bool
	byteOffset   bool
	withFilename bool
	colorMode    string
	noPrefilter  bool
	patternsFile string
	jobs         int
	verbose      bool
}

var (
	errMissingPattern = errors.New("missing token pattern")
	errStdinTwice     = errors.New("standard input (-) given more than once")
)

func newRootCmd(status *int) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tokgrep [flags] PATTERN [FILE...]",
		Short: "tokgrep - search files for token patterns",
		Long: `tokgrep prints lines that contain a match for a token pattern.

Pattern tokens: 'u' is an uppercase letter, 'd' is a digit, '+' repeats the
previous unit and any other byte matches itself. With --patterns, every
argument is a file and the patterns come from a YAML file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			defer func() { _ = logger.Sync() }()

			m, files, err := buildMatcher(opts, args, logger)
			if err != nil {
				return err
			}

			p, err := newPrinter(opts, opts.withFilename || len(files) > 1)
			if err != nil {
				return err
			}

			if len(files) == 0 {
				files = []string{"-"}
			}
			if err := checkSources(files); err != nil {
				return err
			}
			results := scanAll(cmd.Context(), m, p, files, cmd.InOrStdin(), opts.jobs, logger)

			matched, failed := false, false
			out := cmd.OutOrStdout()
			for _, res := range results {
				if res.err != nil {
					failed = true
					fmt.Fprintf(cmd.ErrOrStderr(), "tokgrep: %s: %v\n", res.name, res.err)
					continue
				}
				if res.matches > 0 {
					matched = true
				}
				if _, err := res.out.WriteTo(out); err != nil {
					return err
				}
			}

			st := m.stats()
			logger.Debug("search finished",
				zap.Int("files", len(results)),
				zap.Uint64("searches", st.Searches),
				zap.Uint64("verifications", st.Verifications),
				zap.Uint64("prefilter_hits", st.PrefilterHits),
				zap.Uint64("prefilter_misses", st.PrefilterMisses))

			switch {
			case failed:
				*status = exitError
			case matched:
				*status = exitMatch
			default:
				*status = exitNoMatch
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.lineNumber, "line-number", "n", false, "Prefix each line with its line number")
	flags.BoolVarP(&opts.onlyMatching, "only-matching", "o", false, "Print only the matched parts of a line")
	flags.BoolVarP(&opts.count, "count", "c", false, "Print only a count of matching lines per file")
	flags.BoolVarP(&opts.byteOffset, "byte-offset", "b", false, "Prefix each line with its byte offset")
	flags.BoolVarP(&opts.withFilename, "with-filename", "H", false, "Print the file name for each match")
	flags.StringVar(&opts.colorMode, "color", "auto", "Highlight matches: auto, always or never")
	flags.BoolVar(&opts.noPrefilter, "no-prefilter", false, "Verify every offset instead of using a prefilter")
	flags.StringVar(&opts.patternsFile, "patterns", "", "YAML file of named patterns to search together")
	flags.IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "Number of files scanned concurrently")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

// Execute runs tokgrep and returns the process exit status.
func Execute() int {
	status := exitNoMatch
	rootCmd := newRootCmd(&status)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "tokgrep: %v\n", err)
		return exitError
	}
	return status
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	encoderConfig := zap.NewProductionEncoderConfig()
	if verbose {
		level = zapcore.DebugLevel
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core)
}

// buildMatcher compiles the search patterns and returns the remaining file
// arguments.
func buildMatcher(opts *options, args []string, logger *zap.Logger) (matcher, []string, error) {
	if opts.jobs < 1 {
		return nil, nil, fmt.Errorf("invalid --jobs value %d", opts.jobs)
	}

	config := tokenpat.DefaultConfig()
	config.EnablePrefilter = !opts.noPrefilter
	config.Logger = logger

	if opts.patternsFile != "" {
		specs, err := loadPatterns(opts.patternsFile)
		if err != nil {
			return nil, nil, err
		}
		patterns := make([]*tokenpat.Pattern, 0, len(specs))
		for _, s := range specs {
			p, err := tokenpat.CompileWithConfig(s.Tokens, s.Name, config)
			if err != nil {
				return nil, nil, err
			}
			patterns = append(patterns, p)
		}
		if len(patterns) == 1 {
			return patternMatcher{patterns[0]}, args, nil
		}
		set, err := tokenpat.NewSetWithConfig(config, patterns...)
		if err != nil {
			return nil, nil, err
		}
		return setMatcher{set}, args, nil
	}

	if len(args) == 0 {
		return nil, nil, errMissingPattern
	}
	p, err := tokenpat.CompileWithConfig(args[0], args[0], config)
	if err != nil {
		return nil, nil, err
	}
	return patternMatcher{p}, args[1:], nil
}

// checkSources rejects arguments that would have two scanners share stdin.
func checkSources(files []string) error {
	stdin := 0
	for _, f := range files {
		if f == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errStdinTwice
	}
	return nil
}
