// Package config loads the vecfield CLI configuration from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arloliu/vecfield/errs"
	"github.com/arloliu/vecfield/format"
)

// Config represents the vecfield configuration
type Config struct {
	RenderFormat string `toml:"render_format"` // fmt verb applied to every rendered number
	Compression  string `toml:"compression"`   // none|zstd|s2|lz4
	Layout       string `toml:"layout"`        // legacy|v2
	LogLevel     string `toml:"log_level"`     // debug|info|warn|error
	LogFormat    string `toml:"log_format"`    // text|json
	Color        bool   `toml:"color"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		RenderFormat: "%v",
		Compression:  "none",
		Layout:       "legacy",
		LogLevel:     "info",
		LogFormat:    "text",
		Color:        true,
	}
}

// Load reads the configuration at path. Keys missing from the file keep their
// default values; unknown keys are rejected. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: config %s", errs.ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to path as TOML.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("# %v\n", err)
	}

	return string(data)
}

// Validate checks that every enumerated value is known.
func (c *Config) Validate() error {
	if _, err := c.CompressionType(); err != nil {
		return err
	}
	if _, err := c.PointListLayout(); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	if !strings.Contains(c.RenderFormat, "%") {
		return fmt.Errorf("render format %q is not a fmt verb", c.RenderFormat)
	}

	return nil
}

// CompressionType returns the configured compression.
func (c *Config) CompressionType() (format.CompressionType, error) {
	return format.ParseCompressionType(c.Compression)
}

// PointListLayout returns the configured point list record layout.
func (c *Config) PointListLayout() (format.PointListLayout, error) {
	return format.ParsePointListLayout(c.Layout)
}

// SlogLevel returns the configured minimum log level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", c.LogLevel)
	}
}
