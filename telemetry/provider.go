// Package telemetry provides OpenTelemetry tracing for the API clients:
// tracer lookup, an OTLP/HTTP TracerProvider and per-operation span helpers.
package telemetry

import (
	"context"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	// InstrumentationName is the OTel instrumentation scope name.
	InstrumentationName = "github.com/AltairaLabs/elevenlabs-go"

	// InstrumentationVersion is the OTel instrumentation scope version.
	InstrumentationVersion = "0.1.0"
)

// Resource attributes describing the client.
const (
	AttrClientVersion = attribute.Key("elevenlabs.client.version")
	AttrAPIHost       = attribute.Key("elevenlabs.api.host")
)

// NewResource describes a process using the client: the service, the client
// library version and the API host its spans talk to.
func NewResource(serviceName, serviceVersion, apiURL string) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		AttrClientVersion.String(InstrumentationVersion),
	}
	if serviceVersion != "" {
		attrs = append(attrs, attribute.String("service.version", serviceVersion))
	}
	if u, err := url.Parse(apiURL); err == nil && u.Host != "" {
		attrs = append(attrs, AttrAPIHost.String(u.Host))
	}
	return resource.Merge(resource.Default(), resource.NewSchemaless(attrs...))
}

// Tracer returns the module's tracer from tp. A nil tp uses the global provider.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(InstrumentationName, trace.WithInstrumentationVersion(InstrumentationVersion))
}

// NewTracerProvider creates a TracerProvider exporting spans via OTLP/HTTP to
// endpoint, tagged with res (see NewResource). The caller must call Shutdown
// on the returned provider.
func NewTracerProvider(ctx context.Context, endpoint string, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

// SetupPropagation installs W3C TraceContext and Baggage as the global propagator.
func SetupPropagation() {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}
