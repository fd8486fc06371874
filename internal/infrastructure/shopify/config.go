package shopify

import (
	"errors"
)

// DefaultAPIVersion is the Admin API version used when none is configured
const DefaultAPIVersion = "2025-07"

// Errors for Shopify configuration
var (
	ErrConfigMissingAPIVersion = errors.New("shopify: api version is required")
	ErrShopNotConfigured       = errors.New("shopify: no access token configured for shop")
)

// Config holds configuration for the Shopify Admin API client
type Config struct {
	// APIVersion is the Admin API version, e.g. "2025-07"
	APIVersion string
	// APIBaseURL overrides the per-shop https://<shop> base URL.
	// Used for testing against a local server; empty in production.
	APIBaseURL string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// NewConfig creates a new Shopify configuration with defaults
func NewConfig() *Config {
	return &Config{
		APIVersion:     DefaultAPIVersion,
		TimeoutSeconds: 30,
	}
}

// Validate validates the Shopify configuration
func (c *Config) Validate() error {
	if c.APIVersion == "" {
		return ErrConfigMissingAPIVersion
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return nil
}
