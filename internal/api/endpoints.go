package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/botbuilder/sdk-go/internal/apierrors"
)

// Object is a JSON object decoded without a schema.
type Object = map[string]any

// Analytics report names, each served at /api/analytics/{report}.
const (
	ReportOverview = "overview"
	ReportMessages = "messages"
	ReportUsers    = "users"
)

func (c *Client) object(ctx context.Context, req *Request) (Object, error) {
	var result Object
	if err := c.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) list(ctx context.Context, req *Request) ([]Object, error) {
	var result []Object
	if err := c.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Bots

// ListBots lists bots.
func (c *Client) ListBots(ctx context.Context, query map[string]string) ([]Object, error) {
	return c.list(ctx, &Request{
		Method:   http.MethodGet,
		Path:     "/api/bots",
		Query:    query,
		Resource: apierrors.ResourceBot,
	})
}

// GetBot retrieves a bot by ID.
func (c *Client) GetBot(ctx context.Context, botID string) (Object, error) {
	return c.object(ctx, &Request{
		Method:   http.MethodGet,
		Path:     botPath(botID),
		Resource: apierrors.ResourceBot,
	})
}

// CreateBot creates a bot.
func (c *Client) CreateBot(ctx context.Context, body any) (Object, error) {
	return c.object(ctx, &Request{
		Method:   http.MethodPost,
		Path:     "/api/bots",
		Body:     body,
		Resource: apierrors.ResourceBot,
	})
}

// UpdateBot replaces the given fields of a bot.
func (c *Client) UpdateBot(ctx context.Context, botID string, body any) (Object, error) {
	return c.object(ctx, &Request{
		Method:   http.MethodPut,
		Path:     botPath(botID),
		Body:     body,
		Resource: apierrors.ResourceBot,
	})
}

// DeleteBot deletes a bot.
func (c *Client) DeleteBot(ctx context.Context, botID string) (Object, error) {
	return c.object(ctx, &Request{
		Method:   http.MethodDelete,
		Path:     botPath(botID),
		Resource: apierrors.ResourceBot,
	})
}

// Messages

// SendMessage posts a message to a bot.
func (c *Client) SendMessage(ctx context.Context, body any) (Object, error) {
	return c.object(ctx, &Request{
		Method:   http.MethodPost,
		Path:     "/api/messages",
		Body:     body,
		Resource: apierrors.ResourceMessage,
	})
}

// ListMessages lists the messages of a bot.
func (c *Client) ListMessages(ctx context.Context, botID string, query map[string]string) ([]Object, error) {
	return c.list(ctx, &Request{
		Method: http.MethodGet,
		Path:   botPath(botID) + "/messages",
		Query:  query,
		// A 404 here means the bot is missing.
		Resource: apierrors.ResourceBot,
	})
}

// GetMessage retrieves a message by ID.
func (c *Client) GetMessage(ctx context.Context, messageID string) (Object, error) {
	return c.object(ctx, &Request{
		Method:   http.MethodGet,
		Path:     fmt.Sprintf("/api/messages/%s", url.PathEscape(messageID)),
		Resource: apierrors.ResourceMessage,
	})
}

// Knowledge

// ListDocuments lists knowledge base documents.
func (c *Client) ListDocuments(ctx context.Context, query map[string]string) ([]Object, error) {
	return c.list(ctx, &Request{
		Method:   http.MethodGet,
		Path:     "/api/knowledge",
		Query:    query,
		Resource: apierrors.ResourceDocument,
	})
}

// UploadDocument sends file as the "file" part of a multipart request, with
// form as the remaining fields.
func (c *Client) UploadDocument(ctx context.Context, file *File, form map[string]string) (Object, error) {
	return c.object(ctx, &Request{
		Method:   http.MethodPost,
		Path:     "/api/knowledge/upload",
		File:     file,
		Form:     form,
		Resource: apierrors.ResourceDocument,
	})
}

// DeleteDocument deletes a knowledge base document.
func (c *Client) DeleteDocument(ctx context.Context, documentID string) (Object, error) {
	return c.object(ctx, &Request{
		Method:   http.MethodDelete,
		Path:     fmt.Sprintf("/api/knowledge/%s", url.PathEscape(documentID)),
		Resource: apierrors.ResourceDocument,
	})
}

// Analytics

// GetAnalytics retrieves one analytics report (see the Report constants).
func (c *Client) GetAnalytics(ctx context.Context, report string, query map[string]string) (Object, error) {
	return c.object(ctx, &Request{
		Method:   http.MethodGet,
		Path:     "/api/analytics/" + report,
		Query:    query,
		Resource: apierrors.ResourceAnalytics,
	})
}

// Webhooks

// ListWebhooks lists webhooks.
func (c *Client) ListWebhooks(ctx context.Context) ([]Object, error) {
	return c.list(ctx, &Request{
		Method:   http.MethodGet,
		Path:     "/api/webhooks",
		Resource: apierrors.ResourceWebhook,
	})
}

// CreateWebhook registers a webhook.
func (c *Client) CreateWebhook(ctx context.Context, body any) (Object, error) {
	return c.object(ctx, &Request{
		Method:   http.MethodPost,
		Path:     "/api/webhooks",
		Body:     body,
		Resource: apierrors.ResourceWebhook,
	})
}

// UpdateWebhook replaces the given fields of a webhook.
func (c *Client) UpdateWebhook(ctx context.Context, webhookID string, body any) (Object, error) {
	return c.object(ctx, &Request{
		Method:   http.MethodPut,
		Path:     webhookPath(webhookID),
		Body:     body,
		Resource: apierrors.ResourceWebhook,
	})
}

// DeleteWebhook deletes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) (Object, error) {
	return c.object(ctx, &Request{
		Method:   http.MethodDelete,
		Path:     webhookPath(webhookID),
		Resource: apierrors.ResourceWebhook,
	})
}

func botPath(botID string) string {
	return fmt.Sprintf("/api/bots/%s", url.PathEscape(botID))
}

func webhookPath(webhookID string) string {
	return fmt.Sprintf("/api/webhooks/%s", url.PathEscape(webhookID))
}
