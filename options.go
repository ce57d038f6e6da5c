package botbuilder

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/botbuilder/sdk-go/internal/api"
)

const (
	defaultBaseURL = api.DefaultBaseURL
	defaultTimeout = api.DefaultTimeout
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. A trailing slash is removed.
// Default: https://api.botbuilder.com
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-request timeout. Values <= 0 keep the default.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. The client is copied; the copy
// uses the configured request timeout and client keeps its own Timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets a logger that receives one debug entry per request.
// The API key is never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
