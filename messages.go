package botbuilder

import (
	"context"

	"github.com/botbuilder/sdk-go/internal/api"
)

// MessagesService handles message operations.
type MessagesService struct {
	api *api.Client
}

// Send sends a message to a bot and returns the server's reply object.
func (s *MessagesService) Send(ctx context.Context, params MessageParams) (Object, error) {
	msg, err := s.api.SendMessage(ctx, params.fields())
	return Object(msg), err
}

// List returns messages for a bot.
func (s *MessagesService) List(ctx context.Context, botID string, filters Filters) ([]Object, error) {
	messages, err := s.api.ListMessages(ctx, botID, filters.query())
	if err != nil {
		return nil, err
	}
	return toObjects(messages), nil
}

// Get returns a specific message.
func (s *MessagesService) Get(ctx context.Context, messageID string) (Object, error) {
	msg, err := s.api.GetMessage(ctx, messageID)
	return Object(msg), err
}
