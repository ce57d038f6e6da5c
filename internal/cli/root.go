// Package cli implements the botbuilder command tree on top of the SDK.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	botbuilder "github.com/botbuilder/sdk-go"
	"github.com/botbuilder/sdk-go/internal/config"
	"github.com/botbuilder/sdk-go/internal/logging"
	"github.com/botbuilder/sdk-go/internal/output"
)

// Streams are the standard streams of one invocation.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// session holds what a leaf command needs once configuration is loaded.
type session struct {
	streams Streams
	envFile string

	logger  *zap.Logger
	client  *botbuilder.Client
	printer *output.Printer
}

// handler performs one API call and returns the value to print.
type handler func(ctx context.Context, client *botbuilder.Client, args []string) (any, error)

// NewRootCommand builds the command tree. envFile is the dotenv file read
// before configuration is resolved; empty disables it.
func NewRootCommand(streams Streams, envFile string) *cobra.Command {
	s := &session{streams: streams, envFile: envFile}

	cmd := &cobra.Command{
		Use:   "botbuilder",
		Short: "Command-line client for the BotBuilder API",
		Long: `botbuilder calls the BotBuilder REST API and prints the JSON it returns.

Configuration is read from flags, BOTBUILDER_* environment variables,
a .env file and ~/.botbuilder/config.yaml, in that order of precedence.`,
		Version:       botbuilder.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(streams.Stdin)
	cmd.SetOut(streams.Stdout)
	cmd.SetErr(streams.Stderr)

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Config file (default ~/.botbuilder/config.yaml)")
	pf.String("api-key", "", "API key (overrides BOTBUILDER_API_KEY)")
	pf.String("base-url", "", "API base URL")
	pf.Int("timeout", 0, "Request timeout in seconds")
	pf.StringP("output", "o", "", "Output format: json, yaml")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(newBotsCommand(s))
	cmd.AddCommand(newMessagesCommand(s))
	cmd.AddCommand(newKnowledgeCommand(s))
	cmd.AddCommand(newAnalyticsCommand(s))
	cmd.AddCommand(newWebhooksCommand(s))

	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, streams Streams) int {
	return execute(ctx, NewRootCommand(streams, ".env"), args, streams)
}

func execute(ctx context.Context, cmd *cobra.Command, args []string, streams Streams) int {
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		cliErr := classify(err)
		fmt.Fprintf(streams.Stderr, "%v\n", cliErr)
		return cliErr.ExitCode
	}
	return ExitOK
}

// run wraps h into a cobra RunE that loads configuration, calls h and
// prints its result.
func (s *session) run(h handler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := s.open(cmd); err != nil {
			return err
		}
		defer s.close()

		result, err := h(cmd.Context(), s.client, args)
		if err != nil {
			return err
		}
		return s.printer.Print(result)
	}
}

func (s *session) open(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(config.Options{
		ConfigFile: configFile,
		EnvFile:    s.envFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return newConfigError(err)
	}

	logger, err := logging.New(cfg.LogLevel, s.streams.Stderr)
	if err != nil {
		return newConfigError(err)
	}

	printer, err := output.New(s.streams.Stdout, cfg.Output)
	if err != nil {
		return newConfigError(err)
	}

	client, err := botbuilder.New(cfg.APIKey,
		botbuilder.WithBaseURL(cfg.BaseURL),
		botbuilder.WithTimeout(cfg.Timeout),
		botbuilder.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("timeout", cfg.Timeout),
		zap.String("config_file", cfg.ConfigFile),
	)

	s.logger = logger
	s.client = client
	s.printer = printer
	return nil
}

func (s *session) close() {
	if s.client != nil {
		s.client.Close()
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
}
