package botbuilder

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	tests := []struct {
		name string
		opts []Option
	}{
		{"no options", nil},
		{"base URL", []Option{WithBaseURL("https://example.com")}},
		{"timeout", []Option{WithTimeout(5 * time.Second)}},
		{"http client", []Option{WithHTTPClient(&http.Client{})}},
		{"all options", []Option{
			WithBaseURL("https://example.com/"),
			WithTimeout(time.Second),
			WithHTTPClient(&http.Client{}),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("", tt.opts...)
			if !errors.Is(err, ErrMissingAPIKey) {
				t.Errorf("New() error = %v, want ErrMissingAPIKey", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("New() error type = %T, want *ConfigError", err)
			}
			if cfgErr.Field != "api_key" {
				t.Errorf("Field = %q, want api_key", cfgErr.Field)
			}
		})
	}
}

func TestNew_APIKeyFromEnv(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	t.Setenv(EnvAPIKey, "env-key")

	client, err := New("", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := client.Bots.List(context.Background(), nil); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if gotAuth != "Bearer env-key" {
		t.Errorf("Authorization = %q, want Bearer env-key", gotAuth)
	}
}

func TestNew_ExplicitKeyWinsOverEnv(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	t.Setenv(EnvAPIKey, "env-key")

	client, err := New("explicit-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := client.Bots.Get(context.Background(), "b1"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gotAuth != "Bearer explicit-key" {
		t.Errorf("Authorization = %q, want Bearer explicit-key", gotAuth)
	}
}

func TestNew_NoNetworkActivity(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	client, err := New("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	if hits != 0 {
		t.Errorf("server hits = %d, want 0", hits)
	}
}

func TestNew_Defaults(t *testing.T) {
	client, err := New("test-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.BaseURL() != "https://api.botbuilder.com" {
		t.Errorf("BaseURL() = %s, want https://api.botbuilder.com", client.BaseURL())
	}
	if client.apiClient.Timeout() != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.apiClient.Timeout())
	}
	if client.apiClient.UserAgent() != "BotBuilder-SDK-Go/"+Version {
		t.Errorf("user agent = %s", client.apiClient.UserAgent())
	}
	if client.Bots == nil || client.Messages == nil || client.Knowledge == nil ||
		client.Analytics == nil || client.Webhooks == nil {
		t.Error("all services should be initialized")
	}
}

func TestNew_TrailingSlashStripped(t *testing.T) {
	client, err := New("test-key", WithBaseURL("https://example.com/"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.BaseURL() != "https://example.com" {
		t.Errorf("BaseURL() = %s, want https://example.com", client.BaseURL())
	}
}

func TestNew_EmptyBaseURL(t *testing.T) {
	_, err := New("test-key", WithBaseURL(""))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("New() error = %v, want *ConfigError", err)
	}
	if cfgErr.Field != "base_url" {
		t.Errorf("Field = %q, want base_url", cfgErr.Field)
	}
}

func TestClient_Close(t *testing.T) {
	client, err := New("test-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := client.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	// Second close is a no-op.
	if err := client.Close(); err != nil {
		t.Errorf("Close() second call error = %v", err)
	}
}
