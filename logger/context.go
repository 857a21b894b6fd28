package logger

import (
	"context"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

// Context keys lifted onto every record by ContextHandler.
const (
	// ContextKeyRequestID identifies a single API call.
	ContextKeyRequestID contextKey = "request_id"

	// ContextKeyOperation names the client operation (e.g. "voices.AddVoice").
	ContextKeyOperation contextKey = "operation"

	// ContextKeyVoiceID is the voice an operation targets.
	ContextKeyVoiceID contextKey = "voice_id"

	// ContextKeyCorrelationID is a caller-supplied id for distributed tracing.
	ContextKeyCorrelationID contextKey = "correlation_id"
)

var allContextKeys = []contextKey{
	ContextKeyRequestID,
	ContextKeyOperation,
	ContextKeyVoiceID,
	ContextKeyCorrelationID,
}

// WithRequestID returns a new context with the request ID set.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// WithOperation returns a new context with the operation name set.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, ContextKeyOperation, op)
}

// WithVoiceID returns a new context with the voice ID set.
func WithVoiceID(ctx context.Context, voiceID string) context.Context {
	return context.WithValue(ctx, ContextKeyVoiceID, voiceID)
}

// WithCorrelationID returns a new context with the correlation ID set.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, ContextKeyCorrelationID, correlationID)
}

// LoggingFields holds the logging context fields found on a context.
type LoggingFields struct {
	RequestID     string
	Operation     string
	VoiceID       string
	CorrelationID string
}

// ExtractLoggingFields reads every known logging field from ctx.
func ExtractLoggingFields(ctx context.Context) LoggingFields {
	str := func(k contextKey) string {
		s, _ := ctx.Value(k).(string)
		return s
	}
	return LoggingFields{
		RequestID:     str(ContextKeyRequestID),
		Operation:     str(ContextKeyOperation),
		VoiceID:       str(ContextKeyVoiceID),
		CorrelationID: str(ContextKeyCorrelationID),
	}
}
