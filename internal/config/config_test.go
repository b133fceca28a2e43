package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv(EnvPrefix+"EMAIL", "user@example.com")
	t.Setenv(EnvPrefix+"API_KEY", "test-key")
}

func TestLoad_Defaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected log level %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("expected log format %s, got %s", DefaultLogFormat, cfg.LogFormat)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %s, got %s", DefaultTimeout, cfg.Timeout)
	}
	if cfg.Resolver != DefaultResolver {
		t.Errorf("expected resolver %s, got %s", DefaultResolver, cfg.Resolver)
	}
	if cfg.SSH.Port != DefaultSSHPort {
		t.Errorf("expected ssh port %d, got %d", DefaultSSHPort, cfg.SSH.Port)
	}
	if cfg.Email != "user@example.com" || cfg.APIKey != "test-key" {
		t.Errorf("expected credentials from environment, got %q / %q", cfg.Email, cfg.APIKey)
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	t.Setenv(EnvPrefix+"EMAIL", "")
	t.Setenv(EnvPrefix+"API_KEY", "")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error for missing credentials")
	}
	if !strings.Contains(err.Error(), "email") {
		t.Errorf("expected email error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "api key") {
		t.Errorf("expected api key error, got: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setCredentials(t)
	t.Setenv(EnvPrefix+"LOG_LEVEL", "DEBUG")
	t.Setenv(EnvPrefix+"LOG_FORMAT", "json")
	t.Setenv(EnvPrefix+"ENDPOINT", "http://localhost:8080/api_json.html")
	t.Setenv(EnvPrefix+"TIMEOUT", "30s")
	t.Setenv(EnvPrefix+"MAX_PAGES", "10")
	t.Setenv(EnvPrefix+"RESOLVER", "8.8.8.8:53")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level lowered to debug, got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected log format json, got %s", cfg.LogFormat)
	}
	if cfg.Endpoint != "http://localhost:8080/api_json.html" {
		t.Errorf("unexpected endpoint %s", cfg.Endpoint)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %s", cfg.Timeout)
	}
	if cfg.MaxPages != 10 {
		t.Errorf("expected max pages 10, got %d", cfg.MaxPages)
	}
	if cfg.Resolver != "8.8.8.8:53" {
		t.Errorf("expected resolver 8.8.8.8:53, got %s", cfg.Resolver)
	}
}

func TestLoad_AggregatesErrors(t *testing.T) {
	setCredentials(t)
	t.Setenv(EnvPrefix+"LOG_LEVEL", "verbose")
	t.Setenv(EnvPrefix+"TIMEOUT", "fast")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "log level") {
		t.Errorf("expected log level error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "TIMEOUT") {
		t.Errorf("expected timeout error, got: %v", err)
	}
}

func TestLoad_SecretFile(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "api_key")
	if err := os.WriteFile(keyFile, []byte("  secret-from-file\n"), 0o600); err != nil {
		t.Fatalf("failed to write secret file: %v", err)
	}

	t.Setenv(EnvPrefix+"EMAIL", "user@example.com")
	t.Setenv(EnvPrefix+"API_KEY", "direct-value")
	t.Setenv(EnvPrefix+"API_KEY_FILE", keyFile)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "secret-from-file" {
		t.Errorf("expected trimmed file value to take precedence, got %q", cfg.APIKey)
	}
}

func TestGetEnvOrFile_FallsBackOnReadError(t *testing.T) {
	t.Setenv("TEST_DIRECT", "direct")
	t.Setenv("TEST_DIRECT_FILE", "/nonexistent/path")

	if got := getEnvOrFile("TEST_DIRECT", "TEST_DIRECT_FILE"); got != "direct" {
		t.Errorf("expected fallback to direct value, got %q", got)
	}
}
