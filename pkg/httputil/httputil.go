// Package httputil provides shared HTTP client construction for the API clients.
// It centralizes timeout defaults and transport instrumentation so every client
// built from a Config behaves the same way.
package httputil

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// Standard timeout defaults.
const (
	// DefaultTimeout is the HTTP timeout for API calls. Synthesis of long
	// passages can take tens of seconds, so this is deliberately generous.
	DefaultTimeout = 60 * time.Second

	// DefaultMetadataTimeout suits the small JSON endpoints (user, voice metadata).
	DefaultMetadataTimeout = 30 * time.Second
)

// NewHTTPClient returns an *http.Client configured with the given timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// NewInstrumentedClient returns an *http.Client whose transport emits an
// OpenTelemetry client span per request. A nil provider uses the global one.
func NewInstrumentedClient(timeout time.Duration, tp trace.TracerProvider) *http.Client {
	opts := []otelhttp.Option{}
	if tp != nil {
		opts = append(opts, otelhttp.WithTracerProvider(tp))
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport, opts...),
	}
}

// IsSuccess reports whether status is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
