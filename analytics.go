package botbuilder

import (
	"context"

	"github.com/botbuilder/sdk-go/internal/api"
)

// AnalyticsService handles analytics operations. Filters such as a bot ID
// or date range are passed through as query parameters.
type AnalyticsService struct {
	api *api.Client
}

// GetOverview returns the analytics overview.
func (s *AnalyticsService) GetOverview(ctx context.Context, filters Filters) (Object, error) {
	report, err := s.api.GetAnalytics(ctx, api.ReportOverview, filters.query())
	return Object(report), err
}

// GetMessages returns message analytics.
func (s *AnalyticsService) GetMessages(ctx context.Context, filters Filters) (Object, error) {
	report, err := s.api.GetAnalytics(ctx, api.ReportMessages, filters.query())
	return Object(report), err
}

// GetUsers returns user analytics.
func (s *AnalyticsService) GetUsers(ctx context.Context, filters Filters) (Object, error) {
	report, err := s.api.GetAnalytics(ctx, api.ReportUsers, filters.query())
	return Object(report), err
}
