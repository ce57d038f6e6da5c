package api

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Option configures the API client.
type Option func(*Config)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithUserAgent sets the client identifier header.
func WithUserAgent(userAgent string) Option {
	return func(c *Config) {
		c.UserAgent = userAgent
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// New creates a new API client using functional options. The base URL
// defaults to DefaultBaseURL.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := Config{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}
