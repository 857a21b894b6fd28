// Package user reads the account profile and subscription.
package user

import (
	"context"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"github.com/AltairaLabs/elevenlabs-go/internal/rest"
	"github.com/AltairaLabs/elevenlabs-go/logger"
	"github.com/AltairaLabs/elevenlabs-go/pkg/config"
	pkgerrors "github.com/AltairaLabs/elevenlabs-go/pkg/errors"
)

const (
	opGetUserInfo         = "user.GetUserInfo"
	opGetSubscriptionInfo = "user.GetSubscriptionInfo"
)

// Option configures a Client.
type Option = rest.Option

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option { return rest.WithHTTPClient(hc) }

// WithLogger sets the logger. Failed calls are logged on it at error level.
func WithLogger(l *slog.Logger) Option { return rest.WithLogger(l) }

// WithMetrics sets the metrics hook.
func WithMetrics(m rest.Metrics) Option { return rest.WithMetrics(m) }

// WithTracerProvider sets the tracer provider spans are created from.
func WithTracerProvider(tp trace.TracerProvider) Option { return rest.WithTracerProvider(tp) }

// Client calls the user endpoints. It is safe for concurrent use.
type Client struct {
	rest *rest.Client
}

// NewClient creates a Client for cfg.
func NewClient(cfg config.Config, opts ...Option) *Client {
	return &Client{rest: rest.New(cfg, opts...)}
}

// GetUserInfo returns the account profile, including its subscription.
func (c *Client) GetUserInfo(ctx context.Context) (*UserInfo, error) {
	return get[UserInfo](ctx, c, "/v1/user", opGetUserInfo)
}

// GetSubscriptionInfo returns the account's subscription.
func (c *Client) GetSubscriptionInfo(ctx context.Context) (*SubscriptionInfo, error) {
	return get[SubscriptionInfo](ctx, c, "/v1/user/subscription", opGetSubscriptionInfo)
}

func get[T any](ctx context.Context, c *Client, path, op string) (*T, error) {
	resp, err := c.rest.DoJSON(ctx, http.MethodGet, path, nil, op)
	if err != nil {
		logger.Error(ctx, c.rest.Logger(), "🚨 request failed",
			"operation", op,
			"status_code", pkgerrors.StatusCode(err),
			"error", err.Error())
		return nil, err
	}
	return rest.Decode[T](op, resp)
}
