// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color modes for Display.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all phonebook configuration.
type Config struct {
	Samples Samples `yaml:"samples"`
	Display Display `yaml:"display"`
	Log     Log     `yaml:"log"`
}

// Samples holds the source of the sample contacts loaded at startup.
type Samples struct {
	Path string `yaml:"path"` // Empty selects the embedded samples.
}

// Display holds output rendering settings.
type Display struct {
	Color string `yaml:"color"` // "auto" | "always" | "never"
}

// Log holds diagnostic logging settings.
type Log struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Display: Display{Color: ColorAuto},
		Log:     Log{Level: "warn"},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	layer, err := loadLayer(path)
	if err != nil {
		return nil, err
	}
	if layer != nil {
		cfg.merge(layer)
	}
	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: display.color must be %q, %q or %q, got %q",
			ColorAuto, ColorAlways, ColorNever, c.Display.Color)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level into a slog.Level.
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("config: log.level: %w", err)
	}
	return lvl, nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: PHONEBOOK_SAMPLES, PHONEBOOK_COLOR, PHONEBOOK_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PHONEBOOK_SAMPLES"); v != "" {
		c.Samples.Path = v
	}
	if v := os.Getenv("PHONEBOOK_COLOR"); v != "" {
		c.Display.Color = strings.ToLower(v)
	}
	if v := os.Getenv("PHONEBOOK_LOG_LEVEL"); v != "" {
		l := Log{Level: v}
		if _, err := l.SlogLevel(); err != nil {
			return fmt.Errorf("config: invalid PHONEBOOK_LOG_LEVEL %q: %w", v, err)
		}
		c.Log = l
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Samples *rawSamples `yaml:"samples"`
	Display *rawDisplay `yaml:"display"`
	Log     *rawLog     `yaml:"log"`
}

type rawSamples struct {
	Path *string `yaml:"path"`
}

type rawDisplay struct {
	Color *string `yaml:"color"`
}

type rawLog struct {
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Samples != nil && layer.Samples.Path != nil {
		c.Samples.Path = *layer.Samples.Path
	}
	if layer.Display != nil && layer.Display.Color != nil {
		c.Display.Color = *layer.Display.Color
	}
	if layer.Log != nil && layer.Log.Level != nil {
		c.Log.Level = *layer.Log.Level
	}
}
