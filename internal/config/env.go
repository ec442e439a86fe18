package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the refresher.
// Defaults reproduce the fixed constants of the original one-shot script,
// so running with an empty environment needs no setup.
type Config struct {
	SourceURL   string        `envconfig:"SOURCE_URL" default:"https://www.twilio.com/docs/api/errors/twilio-error-codes.json"`
	OutputPath  string        `envconfig:"OUTPUT_PATH" default:"errors.json"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetSourceURL returns the upstream error-code reference URL
func GetSourceURL() string {
	return Get().SourceURL
}

// GetOutputPath returns the path the mapping file is written to
func GetOutputPath() string {
	return Get().OutputPath
}

// GetHTTPTimeout returns the timeout for the upstream request
func GetHTTPTimeout() time.Duration {
	return Get().HTTPTimeout
}
