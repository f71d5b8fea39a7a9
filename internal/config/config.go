// Package config loads the TOML configuration that controls console output
// and the development-environment flag.
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
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "modlog.toml"

// ColorMode selects when ANSI sequences reach the console.
type ColorMode string

// Supported color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Console writer names.
const (
	WriterStdout = "stdout"
	WriterStderr = "stderr"
)

// Error definitions for the config package
var (
	// ErrInvalidColorMode is returned when console.color is not auto, always or never
	ErrInvalidColorMode = errors.New("invalid console color mode")

	// ErrInvalidLevel is returned when console.level is not a known slog level
	ErrInvalidLevel = errors.New("invalid console log level")

	// ErrInvalidWriter is returned when console.writer is not stdout or stderr
	ErrInvalidWriter = errors.New("invalid console writer")
)

// Config is the decoded configuration file.
type Config struct {
	// Development marks the host as a development environment. Nil means the
	// file does not say, leaving the decision to other sources.
	Development *bool `toml:"development"`

	Console ConsoleConfig `toml:"console"`
}

// ConsoleConfig controls the console handler.
type ConsoleConfig struct {
	Color  ColorMode `toml:"color"`
	Level  string    `toml:"level"`
	Writer string    `toml:"writer"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Console: ConsoleConfig{
			Color:  ColorAuto,
			Level:  "info",
			Writer: WriterStderr,
		},
	}
}

// Parse decodes and validates TOML content. Unknown keys are rejected and
// omitted keys keep their defaults.
func Parse(content []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default() when path does not
// exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks the console section.
func (c *Config) Validate() error {
	switch c.Console.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, c.Console.Color)
	}
	if _, err := c.Console.SlogLevel(); err != nil {
		return err
	}
	switch c.Console.Writer {
	case WriterStdout, WriterStderr:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidWriter, c.Console.Writer)
	}
	return nil
}

// SlogLevel converts the configured level name.
func (c ConsoleConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Level)
	}
	return level, nil
}
