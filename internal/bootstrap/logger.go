// Package bootstrap wires the process-wide logging stack: terminal
// detection, the console handler and the slog default logger.
package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oklog/ulid/v2"

	"github.com/jiraiyah/modlog/internal/config"
	"github.com/jiraiyah/modlog/internal/logging"
	"github.com/jiraiyah/modlog/internal/terminal"
)

// LoggerConfig holds all configuration for logger setup
type LoggerConfig struct {
	Console config.ConsoleConfig

	// RunID tags every record; generated when empty
	RunID string

	// ConsoleWriter overrides the writer named by Console.Writer
	ConsoleWriter io.Writer

	// Capabilities overrides terminal detection
	Capabilities terminal.Capabilities
}

// NewRunID returns a new lexically sortable run identifier.
func NewRunID() string {
	return ulid.Make().String()
}

// SetupLogger builds the console logger described by cfg and installs it as
// the slog default.
//
// It must be called once during startup, before subsystem loggers are
// created, since those capture slog.Default() on construction.
func SetupLogger(cfg LoggerConfig) (*slog.Logger, error) {
	level, err := cfg.Console.SlogLevel()
	if err != nil {
		return nil, err
	}

	out, writer, err := consoleOutput(cfg.Console.Writer)
	if err != nil {
		return nil, err
	}
	if cfg.ConsoleWriter != nil {
		writer = cfg.ConsoleWriter
	}

	caps := cfg.Capabilities
	if caps == nil {
		caps = terminal.NewCapabilities(terminalOptions(cfg.Console.Color, out))
	}

	handler, err := logging.NewConsoleHandler(logging.ConsoleHandlerOptions{
		Writer:       writer,
		Capabilities: caps,
		Level:        level,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create console handler: %w", err)
	}

	runID := cfg.RunID
	if runID == "" {
		runID = NewRunID()
	}

	logger := slog.New(handler.WithAttrs([]slog.Attr{slog.String("run_id", runID)}))
	slog.SetDefault(logger)

	logger.Debug("Logger initialized",
		"level", level,
		"interactive_mode", caps.IsInteractive(),
		"color_support", caps.SupportsColor())

	return logger, nil
}

func consoleOutput(name string) (*os.File, io.Writer, error) {
	switch name {
	case config.WriterStdout:
		return os.Stdout, os.Stdout, nil
	case config.WriterStderr, "":
		return os.Stderr, os.Stderr, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrInvalidWriter, name)
	}
}

func terminalOptions(mode config.ColorMode, out *os.File) terminal.Options {
	return terminal.Options{
		ForceColor:   mode == config.ColorAlways,
		DisableColor: mode == config.ColorNever,
		Output:       out,
	}
}
