package elevenlabs

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"github.com/AltairaLabs/elevenlabs-go/internal/rest"
	"github.com/AltairaLabs/elevenlabs-go/pkg/config"
	"github.com/AltairaLabs/elevenlabs-go/tts"
	"github.com/AltairaLabs/elevenlabs-go/user"
	"github.com/AltairaLabs/elevenlabs-go/voices"
)

// Option configures every client built by New.
type Option = rest.Option

// Metrics receives request and synthesis measurements.
type Metrics = rest.Metrics

// WithHTTPClient sets the HTTP client shared by all clients.
func WithHTTPClient(hc *http.Client) Option { return rest.WithHTTPClient(hc) }

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option { return rest.WithLogger(l) }

// WithMetrics sets the metrics hook, e.g. prometheus.NewRecorder().
func WithMetrics(m Metrics) Option { return rest.WithMetrics(m) }

// WithTracerProvider sets the tracer provider spans are created from.
func WithTracerProvider(tp trace.TracerProvider) Option { return rest.WithTracerProvider(tp) }

// Client groups the API clients.
type Client struct {
	TTS    *tts.Client
	Voices *voices.Client
	User   *user.Client

	cfg config.Config
}

// New builds every client from cfg with the same options.
func New(cfg config.Config, opts ...Option) *Client {
	return &Client{
		TTS:    tts.NewClient(cfg, opts...),
		Voices: voices.NewClient(cfg, opts...),
		User:   user.NewClient(cfg, opts...),
		cfg:    cfg,
	}
}

// Config returns the configuration the clients were built with.
func (c *Client) Config() config.Config {
	return c.cfg
}
