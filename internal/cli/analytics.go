package cli

import (
	"context"

	"github.com/spf13/cobra"

	botbuilder "github.com/botbuilder/sdk-go"
)

func newAnalyticsCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Read analytics reports",
	}

	cmd.AddCommand(analyticsReportCommand(s, "overview", "Show the analytics overview",
		func(ctx context.Context, c *botbuilder.Client, f botbuilder.Filters) (botbuilder.Object, error) {
			return c.Analytics.GetOverview(ctx, f)
		}))
	cmd.AddCommand(analyticsReportCommand(s, "messages", "Show message analytics",
		func(ctx context.Context, c *botbuilder.Client, f botbuilder.Filters) (botbuilder.Object, error) {
			return c.Analytics.GetMessages(ctx, f)
		}))
	cmd.AddCommand(analyticsReportCommand(s, "users", "Show user analytics",
		func(ctx context.Context, c *botbuilder.Client, f botbuilder.Filters) (botbuilder.Object, error) {
			return c.Analytics.GetUsers(ctx, f)
		}))

	return cmd
}

type reportFunc func(ctx context.Context, c *botbuilder.Client, f botbuilder.Filters) (botbuilder.Object, error)

func analyticsReportCommand(s *session, use, short string, report reportFunc) *cobra.Command {
	var filters map[string]string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, _ []string) (any, error) {
			return report(ctx, c, filters)
		}),
	}
	cmd.Flags().StringToStringVar(&filters, "filter", nil, "Query parameter as key=value, e.g. bot_id=... (repeatable)")

	return cmd
}
