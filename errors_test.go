package botbuilder

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrMissingAPIKey", ErrMissingAPIKey},
		{"ErrUnauthorized", ErrUnauthorized},
		{"ErrForbidden", ErrForbidden},
		{"ErrNotFound", ErrNotFound},
		{"ErrBotNotFound", ErrBotNotFound},
		{"ErrMessageNotFound", ErrMessageNotFound},
		{"ErrDocumentNotFound", ErrDocumentNotFound},
		{"ErrWebhookNotFound", ErrWebhookNotFound},
		{"ErrConflict", ErrConflict},
		{"ErrValidation", ErrValidation},
		{"ErrRateLimited", ErrRateLimited},
		{"ErrServer", ErrServer},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestBotBuilderError_Interface(t *testing.T) {
	errs := []error{
		&APIError{StatusCode: 500},
		&NetworkError{Err: errors.New("refused")},
		&ConfigError{Err: ErrMissingAPIKey},
		&DecodeError{Err: errors.New("bad json")},
	}

	for _, err := range errs {
		t.Run(fmt.Sprintf("%T", err), func(t *testing.T) {
			var bbErr BotBuilderError
			if !errors.As(err, &bbErr) {
				t.Errorf("%T does not implement BotBuilderError", err)
			}
		})
	}
}

func TestAPIError_IsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("fetch bot: %w", &APIError{StatusCode: 404, ResourceType: ResourceBot})

	if !errors.Is(err, ErrNotFound) {
		t.Error("wrapped 404 should match ErrNotFound")
	}
	if !errors.Is(err, ErrBotNotFound) {
		t.Error("wrapped bot 404 should match ErrBotNotFound")
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Error("404 should not match ErrUnauthorized")
	}
}
