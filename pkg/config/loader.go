package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AltairaLabs/elevenlabs-go/credentials"
)

// File is the on-disk configuration format:
//
//	api_url: https://api.elevenlabs.io
//	api_key_env: NARRATOR_XI_KEY
//	timeout: 45s
//	logging:
//	  level: debug
//	  format: json
type File struct {
	APIURL     string        `yaml:"api_url,omitempty"`
	APIKey     string        `yaml:"api_key,omitempty"`
	APIKeyFile string        `yaml:"api_key_file,omitempty"`
	APIKeyEnv  string        `yaml:"api_key_env,omitempty"`
	Timeout    time.Duration `yaml:"timeout,omitempty"`
	Logging    LoggingConfig `yaml:"logging,omitempty"`

	// dir is the directory the file was read from, for relative key files.
	dir string
}

// LoadFile reads and validates a YAML config file.
func LoadFile(path string) (*File, error) {
	//nolint:gosec // G304: path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	f, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// ParseFile decodes YAML config bytes.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative, got %s", f.Timeout)
	}
	if err := f.Logging.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Config resolves the key (explicit, key file, named env var, then
// ELEVENLABS_API_KEY) and the URL (file, then ELEVENLABS_API_URL, then default).
func (f *File) Config() (Config, error) {
	key, err := credentials.ResolveKey(credentials.Source{
		APIKey:  f.APIKey,
		KeyFile: f.APIKeyFile,
		KeyEnv:  f.APIKeyEnv,
		BaseDir: f.dir,
	})
	if err != nil {
		return Config{}, err
	}

	apiURL := f.APIURL
	if apiURL == "" {
		apiURL = os.Getenv(EnvAPIURL)
	}

	cfg := New(key, apiURL)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
