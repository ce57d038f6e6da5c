package cli

import (
	"context"

	"github.com/spf13/cobra"

	botbuilder "github.com/botbuilder/sdk-go"
)

func newWebhooksCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage webhooks",
	}

	cmd.AddCommand(webhooksListCommand(s))
	cmd.AddCommand(webhooksCreateCommand(s))
	cmd.AddCommand(webhooksUpdateCommand(s))
	cmd.AddCommand(webhooksDeleteCommand(s))

	return cmd
}

func webhooksListCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		Args:  cobra.NoArgs,
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, _ []string) (any, error) {
			return c.Webhooks.List(ctx)
		}),
	}
}

type webhookFlags struct {
	url    string
	events []string
	fields map[string]string
}

func (f *webhookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.url, "url", "", "Delivery URL")
	cmd.Flags().StringSliceVar(&f.events, "event", nil, "Event to subscribe to (repeatable)")
	cmd.Flags().StringToStringVar(&f.fields, "field", nil, "Additional body field as key=value (repeatable)")
}

func (f *webhookFlags) params() botbuilder.WebhookParams {
	return botbuilder.WebhookParams{
		URL:    f.url,
		Events: f.events,
		Extra:  toFields(f.fields),
	}
}

func webhooksCreateCommand(s *session) *cobra.Command {
	var flags webhookFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a webhook",
		Args:  cobra.NoArgs,
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, _ []string) (any, error) {
			return c.Webhooks.Create(ctx, flags.params())
		}),
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func webhooksUpdateCommand(s *session) *cobra.Command {
	var flags webhookFlags

	cmd := &cobra.Command{
		Use:   "update WEBHOOK_ID",
		Short: "Update a webhook",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(*cobra.Command, []string) error {
			if flags.url == "" && len(flags.events) == 0 && len(flags.fields) == 0 {
				return newUsageError("nothing to update: set --url, --event or --field")
			}
			return nil
		},
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, args []string) (any, error) {
			return c.Webhooks.Update(ctx, args[0], flags.params())
		}),
	}
	flags.register(cmd)

	return cmd
}

func webhooksDeleteCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete WEBHOOK_ID",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, args []string) (any, error) {
			return c.Webhooks.Delete(ctx, args[0])
		}),
	}
}
