// Package logging provides the slog handler that renders records on the
// console. Messages produced by the colorizing logger carry their own ANSI
// sequences; the handler keeps them on color terminals and strips them
// everywhere else so redirected output stays readable.
package logging

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/jiraiyah/modlog/color"
	"github.com/jiraiyah/modlog/internal/terminal"
)

// Static errors for ConsoleHandler validation
var (
	ErrConsoleHandlerWriterRequired       = errors.New("ConsoleHandler: Writer is required")
	ErrConsoleHandlerCapabilitiesRequired = errors.New("ConsoleHandler: Capabilities is required")
)

// LoggerNameKey is the attribute rendered as the [name] column.
const LoggerNameKey = "logger"

const timeFormat = "15:04:05"

// lineBreaks keeps a message on a single output line.
var lineBreaks = strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\r`)

var levelColors = map[slog.Level]color.Foreground{
	slog.LevelDebug: color.FgBrightBlack,
	slog.LevelInfo:  color.FgGreen,
	slog.LevelWarn:  color.FgYellow,
	slog.LevelError: color.FgRed,
}

// ConsoleHandlerOptions configures the ConsoleHandler.
type ConsoleHandlerOptions struct {
	// Writer is the output destination
	Writer io.Writer

	// Capabilities decides whether ANSI sequences are kept
	Capabilities terminal.Capabilities

	// Level is the minimum level handled; nil means slog.LevelInfo
	Level slog.Leveler
}

// ConsoleHandler is a slog.Handler writing one line per record:
//
//	15:04:05 INFO [name] message key=value
type ConsoleHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	caps   terminal.Capabilities
	level  slog.Leveler
	name   string
	attrs  []slog.Attr
	groups []string
}

// NewConsoleHandler creates a ConsoleHandler. Returns an error if any
// required options are missing.
func NewConsoleHandler(opts ConsoleHandlerOptions) (*ConsoleHandler, error) {
	if opts.Writer == nil {
		return nil, ErrConsoleHandlerWriterRequired
	}
	if opts.Capabilities == nil {
		return nil, ErrConsoleHandlerCapabilitiesRequired
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &ConsoleHandler{
		mu:     &sync.Mutex{},
		writer: opts.Writer,
		caps:   opts.Capabilities,
		level:  level,
	}, nil
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes r.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	useColor := h.caps.SupportsColor()

	var buf bytes.Buffer
	if !r.Time.IsZero() {
		buf.WriteString(r.Time.Format(timeFormat))
		buf.WriteByte(' ')
	}

	label := r.Level.String()
	if fg, ok := levelColors[r.Level]; ok && useColor {
		label = color.Paint(label, fg.Code())
	}
	buf.WriteString(label)

	name := h.name
	var extra []slog.Attr
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == LoggerNameKey && len(h.groups) == 0 {
			name = a.Value.String()
			return true
		}
		extra = append(extra, a)
		return true
	})
	if name != "" {
		buf.WriteString(" [")
		buf.WriteString(lineBreaks.Replace(name))
		buf.WriteByte(']')
	}

	msg := r.Message
	if !useColor {
		msg = color.Strip(msg)
	}
	buf.WriteByte(' ')
	buf.WriteString(lineBreaks.Replace(msg))

	prefix := groupPrefix(h.groups)
	for _, a := range h.attrs {
		writeAttr(&buf, "", a, useColor)
	}
	for _, a := range extra {
		writeAttr(&buf, prefix, a, useColor)
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

// WithAttrs returns a new handler with additional attributes. A logger
// attribute outside any group becomes the handler's name.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := h.clone()
	prefix := groupPrefix(h.groups)
	for _, a := range attrs {
		if a.Key == LoggerNameKey && prefix == "" {
			clone.name = a.Value.String()
			continue
		}
		clone.attrs = append(clone.attrs, slog.Attr{Key: prefix + a.Key, Value: a.Value})
	}
	return clone
}

// WithGroup returns a new handler with an additional group.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *ConsoleHandler) clone() *ConsoleHandler {
	return &ConsoleHandler{
		mu:     h.mu,
		writer: h.writer,
		caps:   h.caps,
		level:  h.level,
		name:   h.name,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

func groupPrefix(groups []string) string {
	if len(groups) == 0 {
		return ""
	}
	return strings.Join(groups, ".") + "."
}

// writeAttr renders a as key=value. Values are quoted when they contain
// spaces, quotes, '=' or anything unprintable, so every record stays on
// one line.
func writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr, useColor bool) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		nested := prefix
		if a.Key != "" {
			nested += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(buf, nested, ga, useColor)
		}
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(prefix)
	buf.WriteString(a.Key)
	buf.WriteByte('=')
	value := a.Value.String()
	if !useColor {
		value = color.Strip(value)
	}
	if needsQuoting(value) {
		value = strconv.Quote(value)
	}
	buf.WriteString(value)
}

func needsQuoting(s string) bool {
	for _, r := range s {
		if r == ' ' || r == '"' || r == '=' || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}
