package handler

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlog/ember/core"
	"github.com/emberlog/ember/formatter"
)

func newSlogPair(t *testing.T, min core.Level) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := NewConsole(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTerminal(formatter.Config{ShowTimestamp: false}),
	})
	return slog.New(NewSlogHandler(h, min)), &buf
}

func TestSlogHandlerBasic(t *testing.T) {
	log, buf := newSlogPair(t, core.InfoLevel)

	log.Info("request done", "status", 200, "ok", true)

	assert.Equal(t, "INFO request done status=200 ok=true\n", buf.String())
}

func TestSlogHandlerLevelGate(t *testing.T) {
	log, buf := newSlogPair(t, core.WarnLevel)

	log.Info("ignored")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Equal(t, "WARN kept\n", buf.String())
}

func TestSlogHandlerEnabled(t *testing.T) {
	h := NewSlogHandler(NewConsole(ConsoleConfig{}), core.InfoLevel)

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestSlogHandlerWithAttrsAndGroup(t *testing.T) {
	log, buf := newSlogPair(t, core.DebugLevel)

	log = log.With("service", "api").WithGroup("req")
	log.Debug("routed", "path", "/users")

	assert.Equal(t, "DEBG routed service=api req.path=/users\n", buf.String())
}

func TestSlogHandlerNestedGroupFlattens(t *testing.T) {
	log, buf := newSlogPair(t, core.InfoLevel)

	log.Info("nested", slog.Group("db", slog.String("op", "select"), slog.Int("rows", 3)))

	assert.Equal(t, "INFO nested db.op=select db.rows=3\n", buf.String())
}

func TestSlogLevelMapping(t *testing.T) {
	tests := []struct {
		slog slog.Level
		want core.Level
	}{
		{slog.LevelDebug - 4, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, slogLevelToCore(tt.slog), "slog level %v", tt.slog)
	}
}
