package telemetry

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrOperation  = attribute.Key("elevenlabs.operation")
	AttrVoiceID    = attribute.Key("elevenlabs.voice_id")
	AttrRequestID  = attribute.Key("elevenlabs.request_id")
	AttrStatusCode = attribute.Key("http.response.status_code")
	AttrMethod     = attribute.Key("http.request.method")
)

// StartOperation starts a client span named after the operation.
func StartOperation(ctx context.Context, tracer trace.Tracer, op, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	all := append([]attribute.KeyValue{
		AttrOperation.String(op),
		AttrMethod.String(method),
	}, attrs...)
	return tracer.Start(ctx, op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(all...),
	)
}

// EndOperation records the outcome on span and ends it. statusCode is zero
// when no response was received.
func EndOperation(span trace.Span, statusCode int, err error) {
	if statusCode != 0 {
		span.SetAttributes(AttrStatusCode.Int(statusCode))
	}
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case statusCode >= http.StatusBadRequest:
		span.SetStatus(codes.Error, http.StatusText(statusCode))
	default:
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
