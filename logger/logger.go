// Package logger provides a named, colorizing console logger for mod
// subsystems. Messages are prefixed with ANSI color sequences and handed to
// a LogSink at info level; most helpers are silent outside a development
// environment.
//
// A Logger is immutable after construction and safe for concurrent use.
// One is typically created per subsystem at startup and kept for the life
// of the process.
package logger

import (
	"github.com/jiraiyah/modlog/color"
	"github.com/jiraiyah/modlog/internal/hostenv"
)

// marker prefixes every message.
const marker = ">>> "

// Startup banner colors: yellow text on a pink background.
var (
	bannerForeground = color.RGB{R: 255, G: 255, B: 0}
	bannerBackground = color.RGB{R: 255, G: 0, B: 127}
)

// Logger emits colorized messages for a single named subsystem.
type Logger struct {
	name    string
	sink    LogSink
	verbose bool
}

// New creates a Logger writing to sink. verbose enables the helpers that are
// reserved for development environments.
func New(name string, sink LogSink, verbose bool) *Logger {
	return &Logger{
		name:    name,
		sink:    sink,
		verbose: verbose,
	}
}

// NewWithFacility obtains the sink named name from f and queries env once to
// decide whether the Logger is verbose.
func NewWithFacility(name string, f Facility, env Environment) *Logger {
	return New(name, f.Logger(name), env.IsDevelopment())
}

// NewDefault creates a Logger on top of slog.Default(), verbose when the
// process host environment is a development environment.
func NewDefault(name string) *Logger {
	return NewWithFacility(name, SlogFacility{}, hostenv.Default())
}

// Name returns the subsystem name the Logger was created with.
func (l *Logger) Name() string {
	return l.name
}

// Verbose reports whether development-only helpers produce output.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// LogStartupBanner announces the subsystem's initialization with a
// per-logger banner, ">>> Initializing <name>", in yellow on pink. It is
// emitted regardless of verbosity.
func (l *Logger) LogStartupBanner() {
	l.sink.Info(color.FgBg(bannerForeground, bannerBackground) + marker + "Initializing " + l.name + color.Reset)
}

// Log emits message in bright magenta. Development only.
func (l *Logger) Log(message string) {
	if !l.verbose {
		return
	}
	l.LogColor(message, color.FgBrightMagenta)
}

// LogColor emits message in the given foreground color. Unlike Log it is
// not gated by verbosity.
func (l *Logger) LogColor(message string, fg color.Foreground) {
	l.sink.Info(color.Paint(marker+message, fg.Code()))
}

// LogColors emits message with the given foreground and background colors,
// background sequence first. It is not gated by verbosity.
func (l *Logger) LogColors(message string, fg color.Foreground, bg color.Background) {
	l.sink.Info(color.Paint(marker+message, bg.Code(), fg.Code()))
}

// LogError emits message as black text on bright red. Errors are always
// emitted.
func (l *Logger) LogError(message string) {
	l.LogColors(message, color.FgBlack, color.BgBrightRed)
}

// LogWarning emits message as black text on bright yellow. Development only.
func (l *Logger) LogWarning(message string) {
	if !l.verbose {
		return
	}
	l.LogColors(message, color.FgBlack, color.BgBrightYellow)
}

// LogPlain emits message without any color sequences. Development only.
func (l *Logger) LogPlain(message string) {
	if !l.verbose {
		return
	}
	l.sink.Info(marker + message)
}

// LogRGB emits message with a 24-bit foreground color. Components are not
// range checked. Development only.
func (l *Logger) LogRGB(message string, r, g, b int) {
	if !l.verbose {
		return
	}
	fg := color.RGB{R: r, G: g, B: b}
	l.sink.Info(color.Paint(marker+message, fg.Foreground()))
}

// LogBackRGB emits message with 24-bit foreground and background colors.
// Components are not range checked. Development only.
func (l *Logger) LogBackRGB(message string, rf, gf, bf, rb, gb, bb int) {
	if !l.verbose {
		return
	}
	fg := color.RGB{R: rf, G: gf, B: bf}
	bg := color.RGB{R: rb, G: gb, B: bb}
	l.sink.Info(color.Paint(marker+message, color.FgBg(fg, bg)))
}
