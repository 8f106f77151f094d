// Package config loads the optional YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LogConfig holds logger settings.
type LogConfig struct {
	Format string `yaml:"format"` // "human" (default), "text" or "json"
	Level  string `yaml:"level"`  // "debug", "info" (default), "warn", "error"
}

// Config is the on-disk configuration.
type Config struct {
	DefaultTTL string    `yaml:"default_ttl"`
	Check      bool      `yaml:"check"`
	Log        LogConfig `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DefaultTTL: "3600",
		Log: LogConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load reads a configuration file. Missing keys keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML configuration from r on top of Default().
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that YAML decoding cannot express.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "", "human", "text", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}
	if c.DefaultTTL != "" {
		for _, ch := range c.DefaultTTL {
			if ch < '0' || ch > '9' {
				return fmt.Errorf("default_ttl must be a number of seconds: %q", c.DefaultTTL)
			}
		}
	}
	return nil
}
