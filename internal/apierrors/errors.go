// Package apierrors provides shared error types for the BotBuilder client.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrForbidden is returned when the API key may not access the resource.
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound is returned for any 404 response.
	ErrNotFound = errors.New("resource not found")

	// ErrBotNotFound is returned when a bot is not found.
	ErrBotNotFound = errors.New("bot not found")

	// ErrMessageNotFound is returned when a message is not found.
	ErrMessageNotFound = errors.New("message not found")

	// ErrDocumentNotFound is returned when a knowledge document is not found.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrWebhookNotFound is returned when a webhook is not found.
	ErrWebhookNotFound = errors.New("webhook not found")

	// ErrConflict is returned when the request conflicts with existing state.
	ErrConflict = errors.New("resource conflict")

	// ErrValidation is returned when the server rejects the request payload.
	ErrValidation = errors.New("request validation failed")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is returned for any 5xx response.
	ErrServer = errors.New("server error")
)

// ResourceType indicates which type of resource an error relates to.
type ResourceType string

const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown ResourceType = ""
	// ResourceBot indicates the error relates to a bot.
	ResourceBot ResourceType = "bot"
	// ResourceMessage indicates the error relates to a message.
	ResourceMessage ResourceType = "message"
	// ResourceDocument indicates the error relates to a knowledge document.
	ResourceDocument ResourceType = "document"
	// ResourceWebhook indicates the error relates to a webhook.
	ResourceWebhook ResourceType = "webhook"
	// ResourceAnalytics indicates the error relates to an analytics report.
	ResourceAnalytics ResourceType = "analytics"
)

// ConfigError is returned when the client cannot be constructed from the
// supplied configuration. It is raised before any network activity.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("configuration error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// BotBuilderError implements the BotBuilderError interface.
func (e *ConfigError) BotBuilderError() {}

// APIError represents a non-2xx HTTP response from the BotBuilder API.
type APIError struct {
	StatusCode   int
	Message      string
	RequestID    string
	Method       string
	Path         string
	Body         []byte
	ResourceType ResourceType
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// BotBuilderError implements the BotBuilderError interface.
func (e *APIError) BotBuilderError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return target == ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return target == ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		if target == ErrNotFound {
			return true
		}
		switch e.ResourceType {
		case ResourceBot:
			return target == ErrBotNotFound
		case ResourceMessage:
			return target == ErrMessageNotFound
		case ResourceDocument:
			return target == ErrDocumentNotFound
		case ResourceWebhook:
			return target == ErrWebhookNotFound
		}
		return false
	case e.StatusCode == http.StatusConflict:
		return target == ErrConflict
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return target == ErrValidation
	case e.StatusCode == http.StatusTooManyRequests:
		return target == ErrRateLimited
	case e.StatusCode >= 500:
		return target == ErrServer
	}
	return false
}

// NetworkError represents a failure before any HTTP response was obtained:
// DNS, connection refused, TLS, or timeout.
type NetworkError struct {
	Err    error
	Method string
	URL    string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// BotBuilderError implements the BotBuilderError interface.
func (e *NetworkError) BotBuilderError() {}

// DecodeError is returned when a 2xx response body is not valid JSON.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// BotBuilderError implements the BotBuilderError interface.
func (e *DecodeError) BotBuilderError() {}
