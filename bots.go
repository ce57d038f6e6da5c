package botbuilder

import (
	"context"

	"github.com/botbuilder/sdk-go/internal/api"
)

// BotsService handles bot operations.
type BotsService struct {
	api *api.Client
}

// List returns all bots. Filters are sent as query parameters.
func (s *BotsService) List(ctx context.Context, filters Filters) ([]Object, error) {
	bots, err := s.api.ListBots(ctx, filters.query())
	if err != nil {
		return nil, err
	}
	return toObjects(bots), nil
}

// Get returns a specific bot.
func (s *BotsService) Get(ctx context.Context, botID string) (Object, error) {
	bot, err := s.api.GetBot(ctx, botID)
	return Object(bot), err
}

// Create creates a new bot.
func (s *BotsService) Create(ctx context.Context, params BotParams) (Object, error) {
	bot, err := s.api.CreateBot(ctx, params.fields())
	return Object(bot), err
}

// Update updates a bot with the fields set in params.
func (s *BotsService) Update(ctx context.Context, botID string, params BotParams) (Object, error) {
	bot, err := s.api.UpdateBot(ctx, botID, params.fields())
	return Object(bot), err
}

// Delete deletes a bot. The result is nil when the server sends no body.
func (s *BotsService) Delete(ctx context.Context, botID string) (Object, error) {
	result, err := s.api.DeleteBot(ctx, botID)
	return Object(result), err
}
