// Package config provides environment-based configuration for the career coach API.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults for optional settings.
const (
	DefaultPort   = 8080
	DefaultModel  = "gemini-pro"
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	envAPIKey      = "GEMINI_API_KEY"
	envDatabaseURL = "DATABASE_URL"
	envPort        = "PORT"
	envModel       = "GEMINI_MODEL"
	envAPIURL      = "GEMINI_API_URL"
	envDebug       = "DEBUG"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	Model       string
	APIURL      string
	// Debug controls whether error responses include stack traces.
	// Off by default so production responses stay generic.
	Debug bool
}

// FromEnv assembles a Config from environment variables.
// GEMINI_API_KEY and DATABASE_URL are required; everything else has defaults.
func FromEnv() (*Config, error) {
	apiKey := os.Getenv(envAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable is required", envAPIKey)
	}

	databaseURL := os.Getenv(envDatabaseURL)
	if databaseURL == "" {
		return nil, fmt.Errorf("%s environment variable is required", envDatabaseURL)
	}

	cfg := &Config{
		Port:        DefaultPort,
		DatabaseURL: databaseURL,
		APIKey:      apiKey,
		Model:       DefaultModel,
		APIURL:      DefaultAPIURL,
	}

	if port := os.Getenv(envPort); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("invalid %s value %q", envPort, port)
		}
		cfg.Port = p
	}

	if model := os.Getenv(envModel); model != "" {
		cfg.Model = model
	}
	if apiURL := os.Getenv(envAPIURL); apiURL != "" {
		cfg.APIURL = apiURL
	}

	if debug := os.Getenv(envDebug); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", envDebug, debug)
		}
		cfg.Debug = d
	}

	return cfg, nil
}
