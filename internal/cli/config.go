// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional configuration file, overridden by flags.
type Config struct {
	Precision         string       `yaml:"precision"`          // "single" | "double"
	SignificantDigits int          `yaml:"significant_digits"` // digits in printed results
	LogLevel          string       `yaml:"log_level"`          // "debug" | "info" | "warn" | "error"
	Solver            SolverConfig `yaml:"solver"`
}

// SolverConfig overrides the inverse solver. Zero fields keep each
// family's default.
type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	UpperBound    float64 `yaml:"upper_bound"`
	MaxIterations int     `yaml:"max_iterations"`
}

// ValidPrecisions defines the allowed evaluation precisions.
var ValidPrecisions = []string{"single", "double"}

// DefaultConfig returns the configuration used without a file.
func DefaultConfig() Config {
	return Config{
		Precision:         "double",
		SignificantDigits: 10,
		LogLevel:          "info",
	}
}

// LoadConfig reads the configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := ParseConfig(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML configuration. Fields it does not
// mention keep their defaults, and unknown fields are errors.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field has an allowed value.
func (c Config) Validate() error {
	if !isValidPrecision(c.Precision) {
		return fmt.Errorf("invalid precision %q: must be one of %v", c.Precision, ValidPrecisions)
	}
	if c.SignificantDigits < 1 || c.SignificantDigits > 17 {
		return fmt.Errorf("invalid significant_digits %d: must be in [1, 17]", c.SignificantDigits)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	if c.Solver.Tolerance < 0 || c.Solver.UpperBound < 0 || c.Solver.MaxIterations < 0 {
		return fmt.Errorf("invalid solver settings: values must not be negative")
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// isValidPrecision checks if the precision is one of the allowed values.
func isValidPrecision(p string) bool {
	for _, v := range ValidPrecisions {
		if v == p {
			return true
		}
	}
	return false
}
