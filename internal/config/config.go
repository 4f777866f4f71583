// Package config resolves application configuration from Viper.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// DefaultEndpoint is the transaction endpoint used when nothing else is
// configured.
const DefaultEndpoint = "https://recruitment-test.flip.id/frontend-test"

// DefaultTimeout bounds the fetch request.
const DefaultTimeout = 30 * time.Second

// Config holds the resolved settings for a run.
type Config struct {
	EndpointURL string
	Theme       string
	Timeout     time.Duration
}

// Load reads configuration from Viper, which has already merged the config
// file, FLIPSIDE_ environment variables, and bound flags. Precedence is
// flag > env > file > default.
func Load() (Config, error) {
	cfg := Config{
		EndpointURL: DefaultEndpoint,
		Timeout:     DefaultTimeout,
		Theme:       "default",
	}

	if v := viper.GetString("endpoint.url"); v != "" {
		cfg.EndpointURL = v
	}
	if v := viper.GetDuration("endpoint.timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v := viper.GetString("ui.theme"); v != "" {
		cfg.Theme = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the endpoint URL is well formed.
func (c Config) Validate() error {
	parsed, err := url.Parse(c.EndpointURL)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL %q: %w", c.EndpointURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid endpoint URL %q: scheme must be http or https", c.EndpointURL)
	}
	return nil
}
