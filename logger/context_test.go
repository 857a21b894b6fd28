package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLoggingFields(t *testing.T) {
	ctx := context.Background()
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithOperation(ctx, "voices.DeleteVoice")
	ctx = WithVoiceID(ctx, "voice-9")
	ctx = WithCorrelationID(ctx, "corr-7")

	assert.Equal(t, LoggingFields{
		RequestID:     "req-1",
		Operation:     "voices.DeleteVoice",
		VoiceID:       "voice-9",
		CorrelationID: "corr-7",
	}, ExtractLoggingFields(ctx))
}

func TestExtractLoggingFields_Empty(t *testing.T) {
	assert.Equal(t, LoggingFields{}, ExtractLoggingFields(context.Background()))
}

func TestContextHandler_AddsContextFields(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewContextHandler(slog.NewTextHandler(&buf, nil), slog.String("svc", "cli")))

	ctx := WithOperation(WithRequestID(context.Background(), "abc"), "user.GetUserInfo")
	l.InfoContext(ctx, "done", "status", 200)

	out := buf.String()
	assert.Contains(t, out, "svc=cli")
	assert.Contains(t, out, "request_id=abc")
	assert.Contains(t, out, "operation=user.GetUserInfo")
	assert.Contains(t, out, "status=200")
}

func TestContextHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewContextHandler(slog.NewTextHandler(&buf, nil))

	l := slog.New(h.WithAttrs([]slog.Attr{slog.String("client", "tts")}).WithGroup("req"))
	l.Info("sent", "bytes", 12)

	out := buf.String()
	assert.Contains(t, out, "client=tts")
	assert.Contains(t, out, "req.bytes=12")
}

func TestContextHandler_Unwrap(t *testing.T) {
	inner := slog.NewTextHandler(&bytes.Buffer{}, nil)
	h := NewContextHandler(inner)
	assert.Same(t, inner, h.Unwrap())
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}
