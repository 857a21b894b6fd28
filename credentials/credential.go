// Package credentials applies the API key to outgoing requests and resolves
// the key from explicit values, key files or environment variables.
package credentials

import (
	"context"
	"errors"
	"net/http"
)

// HeaderAPIKey is the header the API authenticates with.
const HeaderAPIKey = "xi-api-key"

// ErrMissingAPIKey is returned when a request is about to be sent without a key.
var ErrMissingAPIKey = errors.New("api key is empty")

// Credential applies authentication to HTTP requests.
type Credential interface {
	// Apply adds authentication to the HTTP request.
	Apply(ctx context.Context, req *http.Request) error

	// Type returns the credential type identifier.
	Type() string
}

// APIKeyCredential sets the API key header on every request.
type APIKeyCredential struct {
	apiKey     string
	headerName string
}

// APIKeyOption configures an APIKeyCredential.
type APIKeyOption func(*APIKeyCredential)

// WithHeaderName overrides the header name, for proxies that expect a different one.
func WithHeaderName(name string) APIKeyOption {
	return func(c *APIKeyCredential) {
		c.headerName = name
	}
}

// NewAPIKeyCredential creates a credential that sends apiKey in the xi-api-key header.
func NewAPIKeyCredential(apiKey string, opts ...APIKeyOption) *APIKeyCredential {
	c := &APIKeyCredential{
		apiKey:     apiKey,
		headerName: HeaderAPIKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Apply sets the key header. An empty key is an error: the API rejects
// unauthenticated calls and failing locally gives a clearer message.
func (c *APIKeyCredential) Apply(_ context.Context, req *http.Request) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	req.Header.Set(c.headerName, c.apiKey)
	return nil
}

// Type returns "api_key".
func (c *APIKeyCredential) Type() string {
	return "api_key"
}

// APIKey returns the raw API key value.
func (c *APIKeyCredential) APIKey() string {
	return c.apiKey
}

// HeaderName returns the header the key is sent in.
func (c *APIKeyCredential) HeaderName() string {
	return c.headerName
}
