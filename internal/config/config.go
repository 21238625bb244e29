// Package config loads parse settings from a TOML file.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Lenient     bool   `koanf:"lenient"`       // skip bad lines instead of failing
	MaxLineSize int    `koanf:"max_line_size"` // longest accepted line in bytes (0 = default)
	Concurrency int    `koanf:"concurrency"`   // OpenMany workers (0 = number of CPUs)
	LogLevel    string `koanf:"log_level"`     // "debug", "info", "warn", "error" or "" for no logging
}

// Load reads the TOML file at path.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if cfg.MaxLineSize < 0 {
		return nil, fmt.Errorf("%s: max_line_size must not be negative", path)
	}
	if cfg.Concurrency < 0 {
		return nil, fmt.Errorf("%s: concurrency must not be negative", path)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, _, err := cfg.Level(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Level returns the configured log level. ok is false when logging is off.
func (c *Config) Level() (level slog.Level, ok bool, err error) {
	if c.LogLevel == "" {
		return 0, false, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, false, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, true, nil
}
