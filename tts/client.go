package tts

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"unicode/utf8"

	"go.opentelemetry.io/otel/trace"

	"github.com/AltairaLabs/elevenlabs-go/internal/rest"
	"github.com/AltairaLabs/elevenlabs-go/logger"
	"github.com/AltairaLabs/elevenlabs-go/pkg/config"
	pkgerrors "github.com/AltairaLabs/elevenlabs-go/pkg/errors"
)

const opSynthesize = "tts.Synthesize"

// Option configures a Client.
type Option = rest.Option

// Metrics receives request and synthesis measurements.
type Metrics = rest.Metrics

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option { return rest.WithHTTPClient(hc) }

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option { return rest.WithLogger(l) }

// WithMetrics sets the metrics hook.
func WithMetrics(m Metrics) Option { return rest.WithMetrics(m) }

// WithTracerProvider sets the tracer provider spans are created from.
func WithTracerProvider(tp trace.TracerProvider) Option { return rest.WithTracerProvider(tp) }

// Client calls the text-to-speech endpoint. It is safe for concurrent use.
type Client struct {
	rest *rest.Client
}

// NewClient creates a Client for cfg.
func NewClient(cfg config.Config, opts ...Option) *Client {
	return &Client{rest: rest.New(cfg, opts...)}
}

// Synthesize converts req.Text to audio with the given voice and returns the
// complete response body.
func (c *Client) Synthesize(ctx context.Context, voiceID string, req Request) ([]byte, error) {
	if voiceID == "" {
		return nil, ErrEmptyVoiceID
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, pkgerrors.Encode(opSynthesize, err)
	}

	path := "/v1/text-to-speech/" + url.PathEscape(voiceID)
	if q := req.query(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	ctx = logger.WithVoiceID(ctx, voiceID)
	httpReq, err := c.rest.NewRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, pkgerrors.Transport(opSynthesize, err)
	}
	httpReq.Header.Set("Accept", rest.ContentTypeMPEG)

	resp, err := c.rest.Do(httpReq, opSynthesize)
	if err != nil {
		return nil, err
	}

	c.rest.Metrics().Synthesized(req.model(), utf8.RuneCountInString(req.Text), len(resp.Body))
	c.rest.Logger().DebugContext(ctx, "speech synthesized",
		"characters", utf8.RuneCountInString(req.Text),
		"audio_bytes", len(resp.Body))
	return resp.Body, nil
}
