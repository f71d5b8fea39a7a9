package logger

import (
	"context"
	"log/slog"
)

// LogSink receives fully formatted messages. Implementations must be safe
// for concurrent use; a Logger never synchronizes calls to its sink.
type LogSink interface {
	Info(msg string)
}

// Facility hands out named sinks, one per subsystem.
type Facility interface {
	Logger(name string) LogSink
}

// Environment reports whether the host runtime is a development
// environment. It is consulted once, when a Logger is constructed.
type Environment interface {
	IsDevelopment() bool
}

// EnvironmentFunc adapts a plain function to Environment.
type EnvironmentFunc func() bool

// IsDevelopment calls f.
func (f EnvironmentFunc) IsDevelopment() bool {
	return f()
}

// loggerNameKey is the attribute carrying the Logger name on slog records.
const loggerNameKey = "logger"

// SlogFacility is a Facility backed by log/slog. A nil Logger resolves to
// slog.Default() at the time a sink is requested.
type SlogFacility struct {
	Logger *slog.Logger
}

// Logger returns a sink that writes info records tagged with name.
func (f SlogFacility) Logger(name string) LogSink {
	base := f.Logger
	if base == nil {
		base = slog.Default()
	}
	return NewSlogSink(base.With(loggerNameKey, name))
}

type slogSink struct {
	logger *slog.Logger
}

// NewSlogSink wraps l as a LogSink emitting at slog.LevelInfo.
func NewSlogSink(l *slog.Logger) LogSink {
	return &slogSink{logger: l}
}

func (s *slogSink) Info(msg string) {
	s.logger.InfoContext(context.Background(), msg)
}
