package cli

import (
	"context"

	"github.com/spf13/cobra"

	botbuilder "github.com/botbuilder/sdk-go"
)

func newMessagesCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Send and read messages",
	}

	cmd.AddCommand(messagesSendCommand(s))
	cmd.AddCommand(messagesListCommand(s))
	cmd.AddCommand(messagesGetCommand(s))

	return cmd
}

func messagesSendCommand(s *session) *cobra.Command {
	var (
		botID   string
		message string
		userID  string
		fields  map[string]string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message to a bot",
		Args:  cobra.NoArgs,
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, _ []string) (any, error) {
			return c.Messages.Send(ctx, botbuilder.MessageParams{
				BotID:   botID,
				Message: message,
				UserID:  userID,
				Extra:   toFields(fields),
			})
		}),
	}
	cmd.Flags().StringVar(&botID, "bot", "", "Bot ID")
	cmd.Flags().StringVar(&message, "message", "", "Message text")
	cmd.Flags().StringVar(&userID, "user", "", "End-user ID")
	cmd.Flags().StringToStringVar(&fields, "field", nil, "Additional body field as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("bot")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func messagesListCommand(s *session) *cobra.Command {
	var filters map[string]string

	cmd := &cobra.Command{
		Use:   "list BOT_ID",
		Short: "List messages of a bot",
		Args:  cobra.ExactArgs(1),
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, args []string) (any, error) {
			return c.Messages.List(ctx, args[0], filters)
		}),
	}
	cmd.Flags().StringToStringVar(&filters, "filter", nil, "Query parameter as key=value (repeatable)")

	return cmd
}

func messagesGetCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get MESSAGE_ID",
		Short: "Show a message",
		Args:  cobra.ExactArgs(1),
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, args []string) (any, error) {
			return c.Messages.Get(ctx, args[0])
		}),
	}
}
