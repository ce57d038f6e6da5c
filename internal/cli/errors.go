package cli

import (
	"errors"
	"fmt"
	"net/http"

	botbuilder "github.com/botbuilder/sdk-go"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitGeneric = 1
	ExitConfig  = 2
	ExitAPI     = 3
	ExitNetwork = 4
)

// CLIError is an error with a user-facing suggestion and an exit code.
type CLIError struct {
	Message    string
	Details    string
	Suggestion string
	ExitCode   int
	Err        error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	msg := e.Message
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Suggestion != "" {
		msg += "\n\nSuggestion: " + e.Suggestion
	}
	return msg
}

func (e *CLIError) Unwrap() error { return e.Err }

func newConfigError(err error) *CLIError {
	return &CLIError{
		Message:    "Invalid configuration",
		Details:    err.Error(),
		Suggestion: "Check --config, BOTBUILDER_* environment variables and flags.",
		ExitCode:   ExitConfig,
		Err:        err,
	}
}

func newUsageError(details string) *CLIError {
	return &CLIError{
		Message:    "Incorrect usage",
		Details:    details,
		Suggestion: "Run with --help for usage information.",
		ExitCode:   ExitGeneric,
	}
}

// classify maps err onto a CLIError.
func classify(err error) *CLIError {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var cfgErr *botbuilder.ConfigError
	if errors.As(err, &cfgErr) {
		e := newConfigError(err)
		if errors.Is(err, botbuilder.ErrMissingAPIKey) {
			e.Suggestion = fmt.Sprintf("Pass --api-key or set %s.", botbuilder.EnvAPIKey)
		}
		return e
	}

	var apiErr *botbuilder.APIError
	if errors.As(err, &apiErr) {
		e := &CLIError{
			Message:  "Request failed",
			Details:  apiErr.Error(),
			ExitCode: ExitAPI,
			Err:      err,
		}
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			e.Suggestion = "Verify your API key is valid and has access to this resource."
		case http.StatusTooManyRequests:
			e.Suggestion = "Wait before retrying."
		}
		return e
	}

	var netErr *botbuilder.NetworkError
	if errors.As(err, &netErr) {
		return &CLIError{
			Message:    "Service unavailable",
			Details:    err.Error(),
			Suggestion: "Check the base URL and your network connectivity.",
			ExitCode:   ExitNetwork,
			Err:        err,
		}
	}

	var decErr *botbuilder.DecodeError
	if errors.As(err, &decErr) {
		return &CLIError{
			Message:  "Unexpected response",
			Details:  err.Error(),
			ExitCode: ExitAPI,
			Err:      err,
		}
	}

	return &CLIError{Message: "Error", Details: err.Error(), ExitCode: ExitGeneric, Err: err}
}
