package botbuilder

import (
	"context"

	"github.com/botbuilder/sdk-go/internal/api"
)

// WebhooksService handles webhook operations.
type WebhooksService struct {
	api *api.Client
}

// List returns all webhooks.
func (s *WebhooksService) List(ctx context.Context) ([]Object, error) {
	hooks, err := s.api.ListWebhooks(ctx)
	if err != nil {
		return nil, err
	}
	return toObjects(hooks), nil
}

// Create creates a webhook.
func (s *WebhooksService) Create(ctx context.Context, params WebhookParams) (Object, error) {
	hook, err := s.api.CreateWebhook(ctx, params.fields())
	return Object(hook), err
}

// Update updates a webhook with the fields set in params.
func (s *WebhooksService) Update(ctx context.Context, webhookID string, params WebhookParams) (Object, error) {
	hook, err := s.api.UpdateWebhook(ctx, webhookID, params.fields())
	return Object(hook), err
}

// Delete deletes a webhook.
func (s *WebhooksService) Delete(ctx context.Context, webhookID string) (Object, error) {
	result, err := s.api.DeleteWebhook(ctx, webhookID)
	return Object(result), err
}
