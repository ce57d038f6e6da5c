package botbuilder

import (
	"fmt"
	"os"

	"github.com/botbuilder/sdk-go/internal/api"
)

// Version is the SDK version.
const Version = "1.0.0"

// UserAgent is the client identifier sent with every request.
const UserAgent = "BotBuilder-SDK-Go/" + Version

// EnvAPIKey is the environment variable read when New receives an empty key.
const EnvAPIKey = "BOTBUILDER_API_KEY"

// Client is the main BotBuilder API client. Its services share one
// authenticated transport and are safe for concurrent use.
type Client struct {
	apiClient *api.Client

	Bots      *BotsService
	Messages  *MessagesService
	Knowledge *KnowledgeService
	Analytics *AnalyticsService
	Webhooks  *WebhooksService
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithUserAgent(UserAgent),
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}

	return api.New(apiKey, apiOpts...)
}

// New creates a new BotBuilder client. An empty apiKey falls back to the
// BOTBUILDER_API_KEY environment variable. Construction performs no network
// calls.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, &ConfigError{
			Field: "api_key",
			Err:   fmt.Errorf("%w: pass it to New or set %s", ErrMissingAPIKey, EnvAPIKey),
		}
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient: apiClient,
		Bots:      &BotsService{api: apiClient},
		Messages:  &MessagesService{api: apiClient},
		Knowledge: &KnowledgeService{api: apiClient},
		Analytics: &AnalyticsService{api: apiClient},
		Webhooks:  &WebhooksService{api: apiClient},
	}, nil
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Close releases idle connections. The client remains usable afterwards;
// new calls simply open new connections.
func (c *Client) Close() error {
	c.apiClient.Close()
	return nil
}
