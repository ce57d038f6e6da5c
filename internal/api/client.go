package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/botbuilder/sdk-go/internal/apierrors"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.botbuilder.com"
	DefaultTimeout = 30 * time.Second
)

// maxMessageLen bounds the error message taken from a non-JSON error body.
const maxMessageLen = 512

// Client is the HTTP API client shared by every resource.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	timeout   time.Duration
	logger    *zap.Logger
	resty     *resty.Client
}

// Config holds configuration for NewClient.
type Config struct {
	// APIKey is sent as a bearer token on every request. Required.
	APIKey string
	// BaseURL is the API root. A trailing slash is removed. Required.
	BaseURL string
	// Timeout bounds each request. Zero selects DefaultTimeout.
	Timeout time.Duration
	// HTTPClient is copied and the copy used as the underlying client, so
	// the caller's value is never modified. Nil selects a fresh http.Client.
	HTTPClient *http.Client
	// UserAgent identifies the SDK to the server. Required.
	UserAgent string
	// Logger receives one debug entry per exchange. Nil disables logging.
	Logger *zap.Logger
}

// NewClient creates a new API client from an explicit Config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &apierrors.ConfigError{Field: "api_key", Err: apierrors.ErrMissingAPIKey}
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		return nil, &apierrors.ConfigError{Field: "base_url", Err: fmt.Errorf("base URL is required")}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		hc := *cfg.HTTPClient
		rc = resty.NewWithClient(&hc)
	} else {
		rc = resty.New()
	}

	c := &Client{
		baseURL:   baseURL,
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
		logger:    cfg.Logger,
		resty:     rc,
	}

	rc.SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetLogger(cfg.Logger.Sugar()).
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", cfg.UserAgent).
		OnAfterResponse(c.logResponse).
		OnError(c.logError)

	return c, nil
}

// BaseURL returns the base URL with any trailing slash removed.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// UserAgent returns the client identifier sent with each request.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// HTTPClient returns the underlying *http.Client.
func (c *Client) HTTPClient() *http.Client {
	return c.resty.GetClient()
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() {
	c.resty.GetClient().CloseIdleConnections()
}

// Do performs one authenticated exchange and decodes the JSON response into
// result. A 2xx response with an empty body leaves result untouched.
func (c *Client) Do(ctx context.Context, req *Request, result any) error {
	r := c.resty.R().SetContext(ctx)
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}
	if req.File != nil {
		r.SetFileReader(req.File.Param, req.File.Name, req.File.Reader)
		if len(req.Form) > 0 {
			r.SetFormData(req.Form)
		}
	} else if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return &apierrors.NetworkError{Err: err, Method: req.Method, URL: c.baseURL + req.Path}
	}

	if !resp.IsSuccess() {
		return parseErrorResponse(req, resp)
	}

	body := resp.Body()
	if result == nil || len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return &apierrors.DecodeError{StatusCode: resp.StatusCode(), Body: body, Err: err}
	}
	return nil
}

func parseErrorResponse(req *Request, resp *resty.Response) error {
	body := resp.Body()

	apiErr := &apierrors.APIError{
		StatusCode:   resp.StatusCode(),
		RequestID:    resp.Header().Get("X-Request-ID"),
		Method:       req.Method,
		Path:         req.Path,
		Body:         body,
		ResourceType: req.Resource,
	}

	var errResp struct {
		Error     any    `json:"error"`
		Message   string `json:"message"`
		Detail    string `json:"detail"`
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch v := errResp.Error.(type) {
		case string:
			apiErr.Message = v
		case map[string]any:
			if msg, ok := v["message"].(string); ok {
				apiErr.Message = msg
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = errResp.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = errResp.Detail
		}
		if errResp.RequestID != "" {
			apiErr.RequestID = errResp.RequestID
		}
		return apiErr
	}

	apiErr.Message = bodySnippet(body)
	return apiErr
}

func bodySnippet(body []byte) string {
	if len(body) > maxMessageLen {
		body = body[:maxMessageLen]
	}
	return strings.TrimSpace(string(body))
}

func (c *Client) logResponse(_ *resty.Client, resp *resty.Response) error {
	if ce := c.logger.Check(zap.DebugLevel, "botbuilder request"); ce != nil {
		ce.Write(
			zap.String("method", resp.Request.Method),
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("duration", resp.Time()),
		)
	}
	return nil
}

func (c *Client) logError(req *resty.Request, err error) {
	c.logger.Debug("botbuilder request failed",
		zap.String("method", req.Method),
		zap.String("url", req.URL),
		zap.Error(err),
	)
}
