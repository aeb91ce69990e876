// Package config loads the optional springen settings file, applies
// defaults, and validates the result.
package config

import (
	"errors"
	"time"

	"github.com/springen/springen/internal/initializr"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates a settings value is out of range.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config holds the tool settings. Everything is optional; zero values
// fall back to defaults.
type Config struct {
	// ServiceURL is the Initializr endpoint.
	ServiceURL string `yaml:"service_url"`

	// TimeoutSeconds bounds each HTTP call. Zero means no timeout: the
	// process blocks until the service responds.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// PlainPrompts forces the numbered-list prompts even on a TTY.
	PlainPrompts bool `yaml:"plain_prompts"`
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		ServiceURL:     initializr.DefaultServiceURL,
		TimeoutSeconds: 30,
	}
}

// Timeout converts TimeoutSeconds to a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.ServiceURL == "" {
		return errors.Join(ErrInvalidConfig, errors.New("service_url must not be empty"))
	}
	if c.TimeoutSeconds < 0 {
		return errors.Join(ErrInvalidConfig, errors.New("timeout_seconds must not be negative"))
	}
	return nil
}
