// Package logger provides structured logging with automatic API key redaction.
//
// It wraps Go's standard log/slog. There is no package-level logger: callers
// build a *slog.Logger with New (or pass their own) and hand it to each client
// at construction time. The helpers in this package accept a nil logger and
// treat it as a discard logger.
//
//	log := logger.New(logger.Options{Level: slog.LevelDebug, Format: logger.FormatJSON})
//	client := tts.NewClient(cfg, tts.WithLogger(log))
package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// Log format constants.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Options configures New.
type Options struct {
	// Level is the minimum level emitted. Zero value is slog.LevelInfo.
	Level slog.Level

	// Format is FormatText (default) or FormatJSON.
	Format string

	// Output is where records are written. Defaults to os.Stderr.
	Output io.Writer

	// CommonFields are added to every record.
	CommonFields map[string]string
}

// New builds a logger that adds context fields to every record and redacts
// API keys from string attributes.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	hopts := &slog.HandlerOptions{
		Level:       opts.Level,
		ReplaceAttr: redactAttr,
	}

	var base slog.Handler
	if opts.Format == FormatJSON {
		base = slog.NewJSONHandler(out, hopts)
	} else {
		base = slog.NewTextHandler(out, hopts)
	}

	common := make([]slog.Attr, 0, len(opts.CommonFields))
	for k, v := range opts.CommonFields {
		common = append(common, slog.String(k, v))
	}
	return slog.New(NewContextHandler(base, common...))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns l, or a discard logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// ParseLevel converts a level name to a slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Info logs an informational message on l.
func Info(ctx context.Context, l *slog.Logger, msg string, args ...any) {
	OrDiscard(l).InfoContext(ctx, msg, args...)
}

// Warn logs a warning on l. Use for unexpected but non-fatal situations.
func Warn(ctx context.Context, l *slog.Logger, msg string, args ...any) {
	OrDiscard(l).WarnContext(ctx, msg, args...)
}

// Error logs an error on l.
func Error(ctx context.Context, l *slog.Logger, msg string, args ...any) {
	OrDiscard(l).ErrorContext(ctx, msg, args...)
}

var (
	// apiKeyPatterns match the key formats that can end up in URLs, headers or bodies.
	apiKeyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`sk_[a-zA-Z0-9]{24,}`),     // ElevenLabs API keys
		regexp.MustCompile(`sk-[a-zA-Z0-9]{32,}`),     // OpenAI-style keys
		regexp.MustCompile(`Bearer\s+[a-zA-Z0-9_-]+`), // Bearer tokens
	}

	// sensitiveKeys are attribute or header names whose values are always hidden.
	sensitiveKeys = map[string]bool{
		"xi-api-key":    true,
		"xi_api_key":    true,
		"api_key":       true,
		"authorization": true,
	}
)

// RedactSensitiveData removes API keys and bearer tokens from s, keeping the
// first four characters of a key for debugging.
func RedactSensitiveData(s string) string {
	result := s
	for _, pattern := range apiKeyPatterns {
		result = pattern.ReplaceAllStringFunc(result, func(match string) string {
			if strings.HasPrefix(match, "Bearer") {
				return "Bearer [REDACTED]"
			}
			if len(match) > 8 {
				return match[:4] + "...[REDACTED]"
			}
			return "[REDACTED]"
		})
	}
	return result
}

// IsSensitiveKey reports whether an attribute or header name carries a secret.
func IsSensitiveKey(name string) bool {
	return sensitiveKeys[strings.ToLower(name)]
}

// redactBody masks the value of every sensitive JSON field at any depth,
// then applies the key patterns. Non-JSON bodies only get the patterns.
func redactBody(body []byte) string {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || !maskSensitiveFields(v) {
		return RedactSensitiveData(string(body))
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "[REDACTED]"
	}
	return RedactSensitiveData(string(out))
}

func maskSensitiveFields(v any) bool {
	masked := false
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if IsSensitiveKey(k) {
				t[k] = "[REDACTED]"
				masked = true
				continue
			}
			if maskSensitiveFields(child) {
				masked = true
			}
		}
	case []any:
		for _, child := range t {
			if maskSensitiveFields(child) {
				masked = true
			}
		}
	}
	return masked
}

func redactAttr(_ []string, a slog.Attr) slog.Attr {
	if IsSensitiveKey(a.Key) {
		return slog.String(a.Key, "[REDACTED]")
	}
	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, RedactSensitiveData(a.Value.String()))
	}
	return a
}

// APIRequest logs an outgoing request at debug level with secrets redacted.
// It is a no-op when debug logging is disabled.
func APIRequest(ctx context.Context, l *slog.Logger, method, url string, headers map[string]string, body []byte) {
	l = OrDiscard(l)
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}

	attrs := make([]any, 0, 8)
	attrs = append(attrs,
		"method", method,
		"url", RedactSensitiveData(url),
	)

	if len(headers) > 0 {
		redacted := make(map[string]string, len(headers))
		for k, v := range headers {
			if IsSensitiveKey(k) {
				redacted[k] = "***"
				continue
			}
			redacted[k] = RedactSensitiveData(v)
		}
		attrs = append(attrs, "headers", redacted)
	}

	if len(body) > 0 {
		attrs = append(attrs, "body", redactBody(body))
	}

	l.DebugContext(ctx, "🔵 API Request", attrs...)
}

// APIResponse logs a response at debug level. Non-JSON bodies (audio) are
// summarized by size; JSON bodies are logged redacted.
func APIResponse(ctx context.Context, l *slog.Logger, statusCode int, body []byte, err error) {
	l = OrDiscard(l)
	if err != nil {
		l.ErrorContext(ctx, "🔴 API Response Error", "status_code", statusCode, "error", err.Error())
		return
	}
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}

	var emoji string
	switch {
	case statusCode >= 200 && statusCode < 300:
		emoji = "🟢"
	case statusCode >= 400:
		emoji = "🔴"
	default:
		emoji = "🟡"
	}

	attrs := []any{"status_code", statusCode}
	if len(body) > 0 {
		if json.Valid(body) {
			attrs = append(attrs, "body", redactBody(body))
		} else {
			attrs = append(attrs, "body_bytes", len(body))
		}
	}

	l.DebugContext(ctx, emoji+" API Response", attrs...)
}
