// Package config loads queryconv settings from a TOML file and flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mpyw/queryconv/internal/typespec"
)

// Default shapes recognized when nothing is configured.
const (
	DefaultQueryable  = "github.com/mpyw/queryconv/linq.Queryable"
	DefaultEnumerable = "github.com/mpyw/queryconv/linq.Enumerable"
)

// ErrInvalidConfig is returned by [Config.Validate].
var ErrInvalidConfig = errors.New("invalid queryconv config")

// Config holds the analyzer settings.
type Config struct {
	Queryable     string   `toml:"queryable"`
	Enumerable    string   `toml:"enumerable"`
	Materializers []string `toml:"materializers"`
	Workers       int      `toml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Queryable:     DefaultQueryable,
		Enumerable:    DefaultEnumerable,
		Materializers: []string{"ToList", "AsEnumerable"},
		Workers:       1,
	}
}

// Load reads a TOML file on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Overrides are values set on the command line. Zero values are ignored.
type Overrides struct {
	Queryable     string
	Enumerable    string
	Materializers string // comma-separated
	Workers       int
}

// Apply returns a copy of c with the non-zero overrides applied.
func (c Config) Apply(o Overrides) Config {
	if o.Queryable != "" {
		c.Queryable = o.Queryable
	}
	if o.Enumerable != "" {
		c.Enumerable = o.Enumerable
	}
	if o.Materializers != "" {
		c.Materializers = SplitList(o.Materializers)
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}

	return c
}

// Validate checks that both shapes are well-formed and workers is positive.
func (c Config) Validate() error {
	var errs []error

	if _, err := typespec.Parse(c.Queryable); err != nil {
		errs = append(errs, fmt.Errorf("queryable: %w", err))
	}
	if _, err := typespec.Parse(c.Enumerable); err != nil {
		errs = append(errs, fmt.Errorf("enumerable: %w", err))
	}
	if c.Queryable == c.Enumerable {
		errs = append(errs, errors.New("queryable and enumerable must differ"))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// SplitList splits a comma-separated list, dropping empty elements.
func SplitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
