// Package config holds the connection settings shared by every client.
//
// A Config is a plain value (API base URL plus API key) that each client
// copies at construction. It can be built directly with New, read from the
// ELEVENLABS_API_KEY / ELEVENLABS_API_URL environment variables, or loaded
// from a YAML file:
//
//	cfg, err := config.LoadFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := tts.NewClient(cfg)
//
// The package is organized into:
//   - config.go: the Config value
//   - env.go: environment variable loaders and .env support
//   - loader.go: YAML file loading
//   - logging.go: logging settings carried by the file format
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultAPIURL is the public API endpoint.
const DefaultAPIURL = "https://api.elevenlabs.io"

// Validation errors.
var (
	ErrEmptyAPIKey   = errors.New("api key is empty")
	ErrInvalidAPIURL = errors.New("api url must be an absolute http(s) url")
)

// redactedKeyPrefix is how many key characters String() keeps.
const redactedKeyPrefix = 4

// Config carries the API base URL and key. Treat it as immutable.
type Config struct {
	// APIURL is the base URL without the /v1 suffix, e.g. https://api.elevenlabs.io.
	APIURL string `yaml:"api_url" json:"api_url"`

	// APIKey is sent in the xi-api-key header of every request.
	APIKey string `yaml:"api_key" json:"api_key"`
}

// New builds a Config from plain values. An empty apiURL selects DefaultAPIURL;
// trailing slashes are trimmed so paths can be appended directly.
func New(apiKey, apiURL string) Config {
	return Config{
		APIURL: normalizeURL(apiURL),
		APIKey: apiKey,
	}
}

// Validate checks that the key is present and the URL is usable.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrEmptyAPIKey
	}
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAPIURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAPIURL, c.APIURL)
	}
	return nil
}

// Endpoint joins the base URL and an API path such as "/v1/user".
func (c Config) Endpoint(path string) string {
	base := normalizeURL(c.APIURL)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// String renders the config with the key redacted.
func (c Config) String() string {
	return fmt.Sprintf("Config{APIURL: %s, APIKey: %s}", c.APIURL, redactKey(c.APIKey))
}

func normalizeURL(u string) string {
	u = strings.TrimRight(strings.TrimSpace(u), "/")
	if u == "" {
		return DefaultAPIURL
	}
	return u
}

func redactKey(key string) string {
	if key == "" {
		return `""`
	}
	if len(key) <= redactedKeyPrefix*2 {
		return "[REDACTED]"
	}
	return key[:redactedKeyPrefix] + "...[REDACTED]"
}
