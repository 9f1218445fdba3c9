package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/wsprune/internal/adapters/logger"
)

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		minLevel   slog.Level
		level      slog.Level
		msg        string
		goldenName string
	}{
		{"info level", slog.LevelInfo, slog.LevelInfo, "info message", "handler_info"},
		{"warn level", slog.LevelInfo, slog.LevelWarn, "warning message", "handler_warn"},
		{"error level", slog.LevelInfo, slog.LevelError, "error message", "handler_error"},
		{"debug level filtered", slog.LevelInfo, slog.LevelDebug, "debug message", "handler_debug_filtered"},
		{"debug level enabled", slog.LevelDebug, slog.LevelDebug, "debug message", "handler_debug_enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: tt.minLevel}))
			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).With("key", "value")
	lg.Info("attrs message", "n", 2)

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_Group(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).WithGroup("scan")
	lg.Info("grouped message", "root", "/ws")

	g := goldie.New(t)
	g.Assert(t, "handler_group", buf.Bytes())
}

func TestPrettyHandler_WithAttrsDoesNotShare(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	base := logger.NewPrettyHandler(buf, nil)
	_ = base.WithAttrs([]slog.Attr{slog.String("a", "1")})

	slog.New(base).Info("plain")
	assert.Equal(t, "plain\n", buf.String())
}
