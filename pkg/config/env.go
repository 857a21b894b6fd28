package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by the loaders.
const (
	EnvAPIKey = "ELEVENLABS_API_KEY"
	EnvAPIURL = "ELEVENLABS_API_URL"
)

// ErrVarNotSet is matched by errors.Is for every VarNotSetError.
var ErrVarNotSet = errors.New("environment variable not set")

// VarNotSetError reports which variable was missing.
type VarNotSetError struct {
	Name string
}

func (e *VarNotSetError) Error() string {
	return "environment variable " + e.Name + " not set"
}

// Is makes errors.Is(err, ErrVarNotSet) true.
func (e *VarNotSetError) Is(target error) bool {
	return target == ErrVarNotSet
}

// LoadAPIKey returns the value of ELEVENLABS_API_KEY exactly as set.
func LoadAPIKey() (string, error) {
	return lookup(EnvAPIKey)
}

// LoadAPIURL returns the value of ELEVENLABS_API_URL exactly as set.
func LoadAPIURL() (string, error) {
	return lookup(EnvAPIURL)
}

// LoadFromEnv builds a Config from the environment. The key is required;
// the URL falls back to DefaultAPIURL.
func LoadFromEnv() (Config, error) {
	key, err := LoadAPIKey()
	if err != nil {
		return Config{}, err
	}
	apiURL, err := LoadAPIURL()
	if err != nil && !errors.Is(err, ErrVarNotSet) {
		return Config{}, err
	}
	return New(key, apiURL), nil
}

// LoadDotEnv loads the first readable .env file from paths into the process
// environment without overriding variables that are already set. It returns
// the path that was loaded, or "" when none could be read.
func LoadDotEnv(paths ...string) string {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			return p
		}
	}
	return ""
}

// lookup distinguishes "unset" from "set to empty": only unset is an error,
// matching what os.LookupEnv reports.
func lookup(name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", &VarNotSetError{Name: name}
	}
	return v, nil
}
