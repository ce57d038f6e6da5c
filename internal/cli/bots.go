package cli

import (
	"context"

	"github.com/spf13/cobra"

	botbuilder "github.com/botbuilder/sdk-go"
)

func newBotsCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bots",
		Short: "Manage bots",
	}

	cmd.AddCommand(botsListCommand(s))
	cmd.AddCommand(botsGetCommand(s))
	cmd.AddCommand(botsCreateCommand(s))
	cmd.AddCommand(botsUpdateCommand(s))
	cmd.AddCommand(botsDeleteCommand(s))

	return cmd
}

func botsListCommand(s *session) *cobra.Command {
	var filters map[string]string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bots",
		Args:  cobra.NoArgs,
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, _ []string) (any, error) {
			return c.Bots.List(ctx, filters)
		}),
	}
	cmd.Flags().StringToStringVar(&filters, "filter", nil, "Query parameter as key=value (repeatable)")

	return cmd
}

func botsGetCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get BOT_ID",
		Short: "Show a bot",
		Args:  cobra.ExactArgs(1),
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, args []string) (any, error) {
			return c.Bots.Get(ctx, args[0])
		}),
	}
}

// botFlags are shared by create and update.
type botFlags struct {
	name        string
	description string
	fields      map[string]string
}

func (f *botFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Bot name")
	cmd.Flags().StringVar(&f.description, "description", "", "Bot description")
	cmd.Flags().StringToStringVar(&f.fields, "field", nil, "Additional body field as key=value (repeatable)")
}

func (f *botFlags) params() botbuilder.BotParams {
	return botbuilder.BotParams{
		Name:        f.name,
		Description: f.description,
		Extra:       toFields(f.fields),
	}
}

func (f *botFlags) empty() bool {
	return f.name == "" && f.description == "" && len(f.fields) == 0
}

func botsCreateCommand(s *session) *cobra.Command {
	var flags botFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a bot",
		Args:  cobra.NoArgs,
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, _ []string) (any, error) {
			return c.Bots.Create(ctx, flags.params())
		}),
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func botsUpdateCommand(s *session) *cobra.Command {
	var flags botFlags

	cmd := &cobra.Command{
		Use:   "update BOT_ID",
		Short: "Update a bot",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(*cobra.Command, []string) error {
			if flags.empty() {
				return newUsageError("nothing to update: set --name, --description or --field")
			}
			return nil
		},
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, args []string) (any, error) {
			return c.Bots.Update(ctx, args[0], flags.params())
		}),
	}
	flags.register(cmd)

	return cmd
}

func botsDeleteCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete BOT_ID",
		Short: "Delete a bot",
		Args:  cobra.ExactArgs(1),
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, args []string) (any, error) {
			return c.Bots.Delete(ctx, args[0])
		}),
	}
}

func toFields(m map[string]string) botbuilder.Fields {
	if len(m) == 0 {
		return nil
	}
	f := make(botbuilder.Fields, len(m))
	for k, v := range m {
		f[k] = v
	}
	return f
}
