package botbuilder

import "github.com/botbuilder/sdk-go/internal/apierrors"

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrUnauthorized matches 401 responses.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrForbidden matches 403 responses.
	ErrForbidden = apierrors.ErrForbidden

	// ErrNotFound matches every 404 response.
	ErrNotFound = apierrors.ErrNotFound

	// ErrBotNotFound matches 404 responses from bot endpoints.
	ErrBotNotFound = apierrors.ErrBotNotFound

	// ErrMessageNotFound matches 404 responses from message endpoints.
	ErrMessageNotFound = apierrors.ErrMessageNotFound

	// ErrDocumentNotFound matches 404 responses from knowledge endpoints.
	ErrDocumentNotFound = apierrors.ErrDocumentNotFound

	// ErrWebhookNotFound matches 404 responses from webhook endpoints.
	ErrWebhookNotFound = apierrors.ErrWebhookNotFound

	// ErrConflict matches 409 responses.
	ErrConflict = apierrors.ErrConflict

	// ErrValidation matches 400 and 422 responses.
	ErrValidation = apierrors.ErrValidation

	// ErrRateLimited matches 429 responses.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServer matches 5xx responses.
	ErrServer = apierrors.ErrServer
)

// BotBuilderError is implemented by all SDK errors.
type BotBuilderError interface {
	error
	BotBuilderError() // marker method
}

// ConfigError is returned by New when the client cannot be configured.
type ConfigError = apierrors.ConfigError

// APIError represents a non-2xx HTTP response. Body holds the raw response
// body; Message is extracted from it when the body is JSON.
type APIError = apierrors.APIError

// NetworkError represents a failure before a response was received.
type NetworkError = apierrors.NetworkError

// DecodeError is returned when a 2xx response body is not valid JSON.
type DecodeError = apierrors.DecodeError

// ResourceType indicates which type of resource an APIError relates to.
type ResourceType = apierrors.ResourceType

// Resource types carried by APIError.
const (
	ResourceUnknown   = apierrors.ResourceUnknown
	ResourceBot       = apierrors.ResourceBot
	ResourceMessage   = apierrors.ResourceMessage
	ResourceDocument  = apierrors.ResourceDocument
	ResourceWebhook   = apierrors.ResourceWebhook
	ResourceAnalytics = apierrors.ResourceAnalytics
)
