package cuesheet

import (
	"log/slog"
	"os"

	"github.com/simonhull/cuesheet/internal/config"
)

// OptionsFromFile loads options from a TOML file:
//
//	lenient = true
//	max_line_size = 1048576
//	concurrency = 4
//	log_level = "debug"
//
// Every key is optional. When log_level is set, diagnostics go to stderr as
// text at that level.
func OptionsFromFile(path string) ([]Option, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	var opts []Option
	if cfg.Lenient {
		opts = append(opts, WithLenientParsing())
	}
	if cfg.MaxLineSize > 0 {
		opts = append(opts, WithMaxLineSize(cfg.MaxLineSize))
	}
	if cfg.Concurrency > 0 {
		opts = append(opts, WithConcurrency(cfg.Concurrency))
	}

	level, ok, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if ok {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		opts = append(opts, WithLogger(logger))
	}

	return opts, nil
}
