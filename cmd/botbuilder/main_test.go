package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/botbuilder/sdk-go/internal/cli"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Stdin != os.Stdin {
		t.Error("DefaultConfig().Stdin should be os.Stdin")
	}
	if cfg.Stdout != os.Stdout {
		t.Error("DefaultConfig().Stdout should be os.Stdout")
	}
	if cfg.Stderr != os.Stderr {
		t.Error("DefaultConfig().Stderr should be os.Stderr")
	}
}

func testConfig() (Config, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return Config{Stdin: strings.NewReader(""), Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestRun_BotsGet(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bots/b1" {
			t.Errorf("path = %s, want /api/bots/b1", r.URL.Path)
		}
		w.Write([]byte(`{"id":"b1","name":"Support"}`))
	}))
	defer server.Close()

	cfg, stdout, stderr := testConfig()
	code := run([]string{"bots", "get", "b1", "--api-key", "k", "--base-url", server.URL}, cfg)

	if code != cli.ExitOK {
		t.Fatalf("run() = %d, stderr = %s", code, stderr)
	}
	if !strings.Contains(stdout.String(), `"name": "Support"`) {
		t.Errorf("stdout = %s", stdout)
	}
}

func TestRun_MissingAPIKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BOTBUILDER_API_KEY", "")
	os.Unsetenv("BOTBUILDER_API_KEY")

	cfg, _, stderr := testConfig()
	code := run([]string{"bots", "list"}, cfg)

	if code != cli.ExitConfig {
		t.Errorf("run() = %d, want %d", code, cli.ExitConfig)
	}
	if !strings.Contains(stderr.String(), "BOTBUILDER_API_KEY") {
		t.Errorf("stderr = %s", stderr)
	}
}

func TestRun_Version(t *testing.T) {
	cfg, stdout, _ := testConfig()
	code := run([]string{"--version"}, cfg)

	if code != cli.ExitOK {
		t.Fatalf("run() = %d", code)
	}
	if !strings.Contains(stdout.String(), "1.0.0") {
		t.Errorf("stdout = %s", stdout)
	}
}
