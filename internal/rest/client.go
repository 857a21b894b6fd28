// Package rest is the request builder and sender shared by the tts, voices
// and user clients. It attaches the API key, logs requests and responses,
// records metrics and spans, buffers response bodies and maps non-2xx
// statuses to *errors.Error.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/AltairaLabs/elevenlabs-go/credentials"
	"github.com/AltairaLabs/elevenlabs-go/logger"
	"github.com/AltairaLabs/elevenlabs-go/pkg/codec"
	"github.com/AltairaLabs/elevenlabs-go/pkg/config"
	pkgerrors "github.com/AltairaLabs/elevenlabs-go/pkg/errors"
	"github.com/AltairaLabs/elevenlabs-go/pkg/httputil"
	"github.com/AltairaLabs/elevenlabs-go/telemetry"
)

// Content types.
const (
	ContentTypeJSON = "application/json"
	ContentTypeMPEG = "audio/mpeg"
)

// codeTransportError labels requests that never received a response.
const codeTransportError = "transport_error"

// Metrics receives per-request and per-synthesis measurements.
type Metrics interface {
	RequestStarted(operation string)
	RequestFinished(operation, code string, d time.Duration)
	Synthesized(model string, characters, audioBytes int)
}

type noopMetrics struct{}

func (noopMetrics) RequestStarted(string) {}

func (noopMetrics) RequestFinished(string, string, time.Duration) {}

func (noopMetrics) Synthesized(string, int, int) {}

// Response is a fully buffered 2xx response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client sends requests against the API base URL of a Config.
type Client struct {
	cfg        config.Config
	credential credentials.Credential
	httpClient *http.Client
	logger     *slog.Logger
	metrics    Metrics
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used to send requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger.OrDiscard(l)
	}
}

// WithMetrics sets the metrics hook, e.g. a prometheus.Recorder.
func WithMetrics(m Metrics) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracerProvider sets the provider spans are created from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = telemetry.Tracer(tp)
	}
}

// WithCredential replaces the API key credential built from the Config.
func WithCredential(cred credentials.Credential) Option {
	return func(c *Client) {
		if cred != nil {
			c.credential = cred
		}
	}
}

// New creates a Client for cfg.
func New(cfg config.Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		credential: credentials.NewAPIKeyCredential(cfg.APIKey),
		httpClient: httputil.NewHTTPClient(httputil.DefaultTimeout),
		logger:     logger.Discard(),
		metrics:    noopMetrics{},
		tracer:     telemetry.Tracer(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the client's configuration.
func (c *Client) Config() config.Config {
	return c.cfg
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Metrics returns the client's metrics hook.
func (c *Client) Metrics() Metrics {
	return c.metrics
}

// NewRequest builds a request for path (which may carry a query string)
// relative to the configured base URL. Accept and Content-Type default to
// JSON for every method.
func (c *Client) NewRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint(path), r)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", ContentTypeJSON)
	req.Header.Set("Content-Type", ContentTypeJSON)
	return req, nil
}

// Do sends req and returns the buffered response. Any non-2xx status is
// returned as a KindAPI error carrying the status and body; failures to
// send or read are KindTransport.
func (c *Client) Do(req *http.Request, op string) (*Response, error) {
	requestID := uuid.NewString()
	ctx := logger.WithOperation(logger.WithRequestID(req.Context(), requestID), op)
	ctx, span := telemetry.StartOperation(ctx, c.tracer, op, req.Method,
		telemetry.AttrRequestID.String(requestID))
	req = req.WithContext(ctx)

	if err := c.credential.Apply(ctx, req); err != nil {
		e := pkgerrors.Transport(op, err)
		telemetry.EndOperation(span, 0, e)
		return nil, e
	}

	logger.APIRequest(ctx, c.logger, req.Method, req.URL.String(), flattenHeaders(req.Header), requestBody(req))

	c.metrics.RequestStarted(op)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RequestFinished(op, codeTransportError, time.Since(start))
		logger.APIResponse(ctx, c.logger, 0, nil, err)
		e := pkgerrors.Transport(op, err)
		telemetry.EndOperation(span, 0, e)
		return nil, e
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.metrics.RequestFinished(op, strconv.Itoa(resp.StatusCode), time.Since(start))
	if err != nil {
		logger.APIResponse(ctx, c.logger, resp.StatusCode, nil, err)
		e := pkgerrors.Transport(op, fmt.Errorf("failed to read response: %w", err)).
			WithStatusCode(resp.StatusCode)
		telemetry.EndOperation(span, resp.StatusCode, e)
		return nil, e
	}

	logger.APIResponse(ctx, c.logger, resp.StatusCode, body, nil)

	if !httputil.IsSuccess(resp.StatusCode) {
		e := pkgerrors.API(op, resp.StatusCode, body)
		telemetry.EndOperation(span, resp.StatusCode, e)
		return nil, e
	}

	telemetry.EndOperation(span, resp.StatusCode, nil)
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// DoJSON sends in (when non-nil) as a JSON body and returns the buffered response.
func (c *Client) DoJSON(ctx context.Context, method, path string, in any, op string) (*Response, error) {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, pkgerrors.Encode(op, err)
		}
		body = b
	}
	req, err := c.NewRequest(ctx, method, path, body)
	if err != nil {
		return nil, pkgerrors.Transport(op, err)
	}
	return c.Do(req, op)
}

// DoMultipart closes m and posts it to path.
func (c *Client) DoMultipart(ctx context.Context, path string, m *Multipart, op string) (*Response, error) {
	contentType, body, err := m.Close()
	if err != nil {
		return nil, err
	}
	req, err := c.NewRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, pkgerrors.Transport(op, err)
	}
	req.Header.Set("Content-Type", contentType)
	return c.Do(req, op)
}

// Decode decodes a JSON response body into a T.
func Decode[T any](op string, resp *Response) (*T, error) {
	v, err := codec.DecodeBytes[T](resp.Body)
	if err != nil {
		e := pkgerrors.Decode(op, err).WithStatusCode(resp.StatusCode)
		e.Body = resp.Body
		return nil, e
	}
	return &v, nil
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = strings.Join(v, ", ")
	}
	return out
}

// requestBody returns a copy of a JSON request body for logging.
func requestBody(req *http.Request) []byte {
	if req.GetBody == nil || !strings.HasPrefix(req.Header.Get("Content-Type"), ContentTypeJSON) {
		return nil
	}
	rc, err := req.GetBody()
	if err != nil {
		return nil
	}
	defer rc.Close()
	b, _ := io.ReadAll(rc)
	return b
}
