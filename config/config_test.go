package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/podio/auth"
	"github.com/adamwoolhether/podio/config"
	"github.com/adamwoolhether/podio/transport"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "podio.yaml", `
client_id: id
client_secret: secret
username: me@example.com
password: pw
timeout: 5s
rate_per_hour: 5000
burst: 10
log_level: debug
curl: true
request_id: true
`)

	cfg, err := config.Load(config.New(), path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	exp := config.Config{
		Domain:       transport.DefaultBaseURL,
		ClientID:     "id",
		ClientSecret: "secret",
		Username:     "me@example.com",
		Password:     "pw",
		Timeout:      5 * time.Second,
		RatePerHour:  5000,
		Burst:        10,
		LogLevel:     "debug",
		Curl:         true,
		RequestID:    true,
	}
	if diff := cmp.Diff(exp, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	if cfg.Level() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.Level())
	}

	grant, ok := cfg.Grant().(auth.PasswordGrant)
	if !ok || grant.Username != "me@example.com" {
		t.Errorf("expected password grant, got %#v", cfg.Grant())
	}

	opts, err := cfg.TransportOptions(slog.Default())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(opts) != 5 {
		t.Errorf("expected logger, timeout, throttle, curl and request id options, got %d", len(opts))
	}
	if _, err := transport.Build(opts...); err != nil {
		t.Errorf("options should build a transport: %v", err)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PODIO_CLIENT_ID", "env-id")
	t.Setenv("PODIO_CLIENT_SECRET", "env-secret")
	t.Setenv("PODIO_APP_ID", "77")
	t.Setenv("PODIO_APP_TOKEN", "apptok")
	t.Setenv("PODIO_DOMAIN", "https://api.example.com")

	cfg, err := config.Load(config.New(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	exp := auth.AppGrant{ClientID: "env-id", ClientSecret: "env-secret", AppID: "77", AppToken: "apptok"}
	if diff := cmp.Diff(auth.Grant(exp), cfg.Grant()); diff != "" {
		t.Errorf("grant mismatch (-want +got):\n%s", diff)
	}
	if cfg.Domain != "https://api.example.com" {
		t.Errorf("expected domain from env, got %s", cfg.Domain)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "podio.json", `{"client_id":"file-id","client_secret":"s","username":"u","password":"p"}`)
	t.Setenv("PODIO_CLIENT_ID", "env-id")

	cfg, err := config.Load(config.New(), path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.ClientID != "env-id" {
		t.Errorf("expected env to win, got %s", cfg.ClientID)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := writeFile(t, "podio.yaml", `
domain: not a url
client_secret: secret
log_level: loud
`)

	_, err := config.Load(config.New(), path)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var fe config.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %T: %v", err, err)
	}

	fields := fe.Fields()
	for _, name := range []string{"domain", "client_id", "username", "log_level"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("expected %q field error, got %v", name, fields)
		}
	}
	if fields["client_id"] != "This field is required" {
		t.Errorf("client_id error = %q", fields["client_id"])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(config.New(), filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
