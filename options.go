package cuesheet

import (
	"bufio"
	"log/slog"
	"runtime"
)

// Option configures parsing.
//
// Options use the functional options pattern:
//
//	sheet, err := cuesheet.Open("album.cue",
//	    cuesheet.WithLenientParsing(),
//	    cuesheet.WithLogger(slog.Default()),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for a parse.
type parseOptions struct {
	logger      *slog.Logger
	lenient     bool // Skip bad lines instead of failing
	maxLineSize int  // Longest accepted line in bytes
	concurrency int  // OpenMany worker limit
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{
		logger:      slog.New(slog.DiscardHandler),
		lenient:     false,
		maxLineSize: bufio.MaxScanTokenSize,
		concurrency: runtime.NumCPU(),
	}
}

func buildOptions(opts []Option) *parseOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithLenientParsing skips lines that fail to tokenize or apply.
//
// By default parsing stops at the first bad line and returns its positioned
// error. In lenient mode the line's effect is dropped and parsing continues;
// only a failure of the underlying reader is returned. Skipped lines are
// logged at debug level.
func WithLenientParsing() Option {
	return func(o *parseOptions) {
		o.lenient = true
	}
}

// WithLogger sets the logger used for diagnostics. The default discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *parseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxLineSize sets the longest line, in bytes, a reader may supply.
// Longer lines fail with an IOError. Default is bufio.MaxScanTokenSize.
func WithMaxLineSize(bytes int) Option {
	return func(o *parseOptions) {
		if bytes > 0 {
			o.maxLineSize = bytes
		}
	}
}

// WithConcurrency limits how many files OpenMany parses at once.
// Default is runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(o *parseOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
