package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadFromBytes parses YAML config bytes and finalizes the result.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML config bytes without expanding, defaulting or
// validating, so callers can layer flags on top first. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Finalize expands env vars, applies defaults, and validates.
func (c *Config) Finalize() error {
	if err := c.ExpandEnv(); err != nil {
		return err
	}
	c.ApplyDefaults()
	return c.Validate()
}
