// Command botbuilder is a command-line client for the BotBuilder API.
//
// Usage:
//
//	botbuilder bots list
//	botbuilder messages send --bot BOT_ID --message "Hello"
//	botbuilder knowledge upload ./faq.pdf --category faq
//	botbuilder analytics overview --filter bot_id=BOT_ID
//
// Run botbuilder --help for the full command list.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/botbuilder/sdk-go/internal/cli"
)

// Config holds the standard streams used by run.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// run executes the command line and returns the exit code. An interrupt
// cancels the in-flight request.
func run(args []string, cfg Config) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.Execute(ctx, args, cli.Streams{
		Stdin:  cfg.Stdin,
		Stdout: cfg.Stdout,
		Stderr: cfg.Stderr,
	})
}
