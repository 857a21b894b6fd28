package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultEnvVar is the environment variable consulted when nothing else is configured.
const DefaultEnvVar = "ELEVENLABS_API_KEY"

// Source describes where an API key may come from.
type Source struct {
	// APIKey is an explicit key value.
	APIKey string

	// KeyFile is a file holding the key. Relative paths resolve against BaseDir.
	KeyFile string

	// KeyEnv names an environment variable holding the key.
	KeyEnv string

	// BaseDir is used to resolve a relative KeyFile.
	BaseDir string
}

// ResolveKey walks the chain:
//  1. explicit APIKey
//  2. KeyFile
//  3. KeyEnv (must be set if named)
//  4. ELEVENLABS_API_KEY
//
// It returns an empty string, not an error, when nothing is configured.
func ResolveKey(src Source) (string, error) {
	if src.APIKey != "" {
		return src.APIKey, nil
	}

	if src.KeyFile != "" {
		key, err := readKeyFile(src.KeyFile, src.BaseDir)
		if err != nil {
			return "", fmt.Errorf("failed to read api key file: %w", err)
		}
		return key, nil
	}

	if src.KeyEnv != "" {
		key := os.Getenv(src.KeyEnv)
		if key == "" {
			return "", fmt.Errorf("environment variable %s is not set", src.KeyEnv)
		}
		return key, nil
	}

	return os.Getenv(DefaultEnvVar), nil
}

// Resolve resolves the key and wraps it in an APIKeyCredential.
func Resolve(src Source) (*APIKeyCredential, error) {
	key, err := ResolveKey(src)
	if err != nil {
		return nil, err
	}
	return NewAPIKeyCredential(key), nil
}

func readKeyFile(path, baseDir string) (string, error) {
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}

	//nolint:gosec // G304: path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
