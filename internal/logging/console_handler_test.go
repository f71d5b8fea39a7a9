package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWriteFailed = errors.New("write failed")

type fakeCapabilities struct {
	interactive bool
	color       bool
}

func (f fakeCapabilities) IsInteractive() bool             { return f.interactive }
func (f fakeCapabilities) SupportsColor() bool             { return f.color }
func (f fakeCapabilities) HasExplicitUserPreference() bool { return false }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }

func newTestHandler(t *testing.T, useColor bool, level slog.Leveler) (*ConsoleHandler, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h, err := NewConsoleHandler(ConsoleHandlerOptions{
		Writer:       &buf,
		Capabilities: fakeCapabilities{interactive: true, color: useColor},
		Level:        level,
	})
	require.NoError(t, err)
	return h, &buf
}

func record(level slog.Level, msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Time{}, level, msg, 0)
	r.AddAttrs(attrs...)
	return r
}

func TestNewConsoleHandler_Validation(t *testing.T) {
	tests := []struct {
		name        string
		opts        ConsoleHandlerOptions
		expectedErr error
	}{
		{
			name:        "missing writer",
			opts:        ConsoleHandlerOptions{Capabilities: fakeCapabilities{}},
			expectedErr: ErrConsoleHandlerWriterRequired,
		},
		{
			name:        "missing capabilities",
			opts:        ConsoleHandlerOptions{Writer: &bytes.Buffer{}},
			expectedErr: ErrConsoleHandlerCapabilitiesRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewConsoleHandler(tt.opts)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, h)
		})
	}
}

func TestConsoleHandler_KeepsColorOnColorTerminal(t *testing.T) {
	h, buf := newTestHandler(t, true, nil)
	msg := "\033[95m>>> hello\033[0m"

	require.NoError(t, h.Handle(context.Background(), record(slog.LevelInfo, msg)))

	assert.Equal(t, "\033[32mINFO\033[0m "+msg+"\n", buf.String())
}

func TestConsoleHandler_StripsColorOtherwise(t *testing.T) {
	h, buf := newTestHandler(t, false, nil)

	require.NoError(t, h.Handle(context.Background(), record(slog.LevelInfo, "\033[38;2;1;2;3m>>> hi\033[0m")))

	assert.Equal(t, "INFO >>> hi\n", buf.String())
}

func TestConsoleHandler_LoggerName(t *testing.T) {
	h, buf := newTestHandler(t, false, nil)

	named := h.WithAttrs([]slog.Attr{slog.String(LoggerNameKey, "ironmod")})
	require.NoError(t, named.Handle(context.Background(), record(slog.LevelInfo, "ready")))

	assert.Equal(t, "INFO [ironmod] ready\n", buf.String())
}

func TestConsoleHandler_LoggerNameOnRecord(t *testing.T) {
	h, buf := newTestHandler(t, false, nil)

	require.NoError(t, h.Handle(context.Background(), record(slog.LevelWarn, "careful", slog.String(LoggerNameKey, "core"))))

	assert.Equal(t, "WARN [core] careful\n", buf.String())
}

func TestConsoleHandler_AttrsAndGroups(t *testing.T) {
	h, buf := newTestHandler(t, false, nil)

	derived := h.WithAttrs([]slog.Attr{slog.String("run_id", "01ABC")}).
		WithGroup("req").
		WithAttrs([]slog.Attr{slog.Int("id", 7)})
	r := record(slog.LevelInfo, "done",
		slog.String("status", "all good"),
		slog.Group("timing", slog.Int("ms", 12)),
	)
	require.NoError(t, derived.Handle(context.Background(), r))

	assert.Equal(t, `INFO done run_id=01ABC req.id=7 req.status="all good" req.timing.ms=12`+"\n", buf.String())
}

func TestConsoleHandler_Level(t *testing.T) {
	h, _ := newTestHandler(t, false, slog.LevelWarn)
	ctx := context.Background()

	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))

	defaults, _ := newTestHandler(t, false, nil)
	assert.False(t, defaults.Enabled(ctx, slog.LevelDebug))
	assert.True(t, defaults.Enabled(ctx, slog.LevelInfo))
}

func TestConsoleHandler_Timestamp(t *testing.T) {
	h, buf := newTestHandler(t, false, nil)
	r := slog.NewRecord(time.Date(2024, 5, 1, 13, 4, 5, 0, time.UTC), slog.LevelInfo, "tick", 0)

	require.NoError(t, h.Handle(context.Background(), r))

	assert.Equal(t, "13:04:05 INFO tick\n", buf.String())
}

func TestConsoleHandler_WriteError(t *testing.T) {
	h, err := NewConsoleHandler(ConsoleHandlerOptions{
		Writer:       failingWriter{},
		Capabilities: fakeCapabilities{},
	})
	require.NoError(t, err)

	err = h.Handle(context.Background(), record(slog.LevelInfo, "x"))

	assert.ErrorIs(t, err, errWriteFailed)
}

func TestConsoleHandler_ConcurrentLinesDoNotInterleave(t *testing.T) {
	h, buf := newTestHandler(t, false, nil)
	logger := slog.New(h)
	const workers, perWorker = 8, 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			child := logger.With(LoggerNameKey, "w")
			for j := 0; j < perWorker; j++ {
				child.Info("line")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, workers*perWorker)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, " INFO [w] line"), line)
	}
}

func TestConsoleHandler_WithEmptyArgsReturnsSelf(t *testing.T) {
	h, _ := newTestHandler(t, false, nil)

	assert.Same(t, h, h.WithAttrs(nil))
	assert.Same(t, h, h.WithGroup(""))
}

func TestConsoleHandler_OneLinePerRecord(t *testing.T) {
	h, buf := newTestHandler(t, false, nil)

	r := record(slog.LevelInfo, "msg\ninjected\r\nmore",
		slog.String("k", "a\nINFO fake line"),
		slog.String(LoggerNameKey, "mod\nINFO"),
	)
	require.NoError(t, h.Handle(context.Background(), r))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), out)
	assert.Equal(t, `INFO [mod\nINFO] msg\ninjected\nmore k="a\nINFO fake line"`+"\n", out)
}

func TestConsoleHandler_QuotesControlCharacters(t *testing.T) {
	h, buf := newTestHandler(t, true, nil)

	r := record(slog.LevelWarn, "x", slog.String("tab", "a\tb"), slog.String("bell", "\a"))
	require.NoError(t, h.Handle(context.Background(), r))

	assert.Contains(t, buf.String(), ` tab="a\tb" bell="\a"`)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestConsoleHandler_StripsColorFromAttrs(t *testing.T) {
	h, buf := newTestHandler(t, false, nil)

	derived := h.WithAttrs([]slog.Attr{slog.String("tag", "\033[31mred\033[0m")})
	r := record(slog.LevelInfo, "done",
		slog.String("status", "\033[38;2;1;2;3mok\033[0m"),
		slog.Group("g", slog.String("inner", "\033[95mhi\033[0m")),
	)
	require.NoError(t, derived.Handle(context.Background(), r))

	assert.Equal(t, "INFO done tag=red status=ok g.inner=hi\n", buf.String())
}

func TestConsoleHandler_ColorAttrsStayOnOneLine(t *testing.T) {
	h, buf := newTestHandler(t, true, nil)

	r := record(slog.LevelInfo, "done", slog.String("status", "\033[32mok\033[0m"))
	require.NoError(t, h.Handle(context.Background(), r))

	assert.Contains(t, buf.String(), ` status="\x1b[32mok\x1b[0m"`)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
