// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("mathguru: invalid config")

// Config is the YAML configuration of the mathguru command.
type Config struct {
	Log        LogConfig      `yaml:"log"`
	Quaternion []string       `yaml:"quaternion"`
	Simplify   SimplifyConfig `yaml:"simplify"`
	Normal     NormalConfig   `yaml:"normal"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
}

// SimplifyConfig mirrors the poly simplification options.
type SimplifyConfig struct {
	MaxDepth int `yaml:"max_depth"`
}

// NormalConfig names the planar point pairs of the three plane normals.
type NormalConfig struct {
	Pairs []PointPair `yaml:"pairs"`
}

// PointPair is one (rotated, fixed) pair of planar point names.
type PointPair struct {
	Rotated string `yaml:"rotated"`
	Fixed   string `yaml:"fixed"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Log:        LogConfig{Level: "info", Format: "text"},
		Quaternion: []string{"q_0", "q_1", "q_2", "q_3"},
		Normal: NormalConfig{Pairs: []PointPair{
			{Rotated: "a", Fixed: "b"},
			{Rotated: "c", Fixed: "d"},
			{Rotated: "e", Fixed: "f"},
		}},
	}
}

// LoadConfig reads path over the defaults. An empty path or an empty file
// yields the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and reports the first violation.
func (c Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format %q, want text or json", ErrInvalidConfig, c.Log.Format)
	}
	if len(c.Quaternion) != 4 {
		return fmt.Errorf("%w: quaternion needs 4 symbols, got %d", ErrInvalidConfig, len(c.Quaternion))
	}
	seen := make(map[string]struct{}, 4)
	for _, name := range c.Quaternion {
		if name == "" {
			return fmt.Errorf("%w: empty quaternion symbol", ErrInvalidConfig)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: quaternion symbol %q repeated", ErrInvalidConfig, name)
		}
		seen[name] = struct{}{}
	}
	if c.Simplify.MaxDepth < 0 {
		return fmt.Errorf("%w: simplify.max_depth must be >= 0, got %d", ErrInvalidConfig, c.Simplify.MaxDepth)
	}
	if len(c.Normal.Pairs) != 3 {
		return fmt.Errorf("%w: normal.pairs needs 3 pairs, got %d", ErrInvalidConfig, len(c.Normal.Pairs))
	}
	for i, p := range c.Normal.Pairs {
		if p.Rotated == "" || p.Fixed == "" {
			return fmt.Errorf("%w: normal.pairs[%d] has an empty name", ErrInvalidConfig, i)
		}
	}

	return nil
}
