package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/v2"
)

func TestLoad_Defaults(t *testing.T) {
	// Endpoint has no default and must come from the environment.
	t.Setenv("DNSCTL_ENDPOINT", "https://dns.example.net/api/v1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Endpoint != "https://dns.example.net/api/v1" {
		t.Errorf("expected Endpoint=https://dns.example.net/api/v1, got %q", cfg.Endpoint)
	}
	if cfg.Token != "" {
		t.Errorf("expected empty Token, got %q", cfg.Token)
	}
	if cfg.Env != "prod" {
		t.Errorf("expected Env=prod, got %q", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel=info, got %q", cfg.LogLevel)
	}
	if cfg.JournalPath != "/var/lib/rr-dnsctl/journal.db" {
		t.Errorf("expected JournalPath=/var/lib/rr-dnsctl/journal.db, got %q", cfg.JournalPath)
	}
	if cfg.CacheSize != 64 {
		t.Errorf("expected CacheSize=64, got %d", cfg.CacheSize)
	}
	if cfg.DefaultTTL != 3600 {
		t.Errorf("expected DefaultTTL=3600, got %d", cfg.DefaultTTL)
	}
	if cfg.WaitForDone {
		t.Error("expected WaitForDone=false by default")
	}
}

func TestLoad_ValidOverrides(t *testing.T) {
	t.Setenv("DNSCTL_ENDPOINT", "http://localhost:8080")
	t.Setenv("DNSCTL_TOKEN", "s3cret")
	t.Setenv("DNSCTL_ENV", "dev")
	t.Setenv("DNSCTL_LOG_LEVEL", "debug")
	t.Setenv("DNSCTL_JOURNAL_PATH", "/tmp/journal.db")
	t.Setenv("DNSCTL_CACHE_SIZE", "16")
	t.Setenv("DNSCTL_DEFAULT_TTL", "300")
	t.Setenv("DNSCTL_WAIT_FOR_DONE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Endpoint != "http://localhost:8080" {
		t.Errorf("expected Endpoint=http://localhost:8080, got %q", cfg.Endpoint)
	}
	if cfg.Token != "s3cret" {
		t.Errorf("expected Token=s3cret, got %q", cfg.Token)
	}
	if cfg.Env != "dev" {
		t.Errorf("expected Env=dev, got %q", cfg.Env)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel=debug, got %q", cfg.LogLevel)
	}
	if cfg.JournalPath != "/tmp/journal.db" {
		t.Errorf("expected JournalPath=/tmp/journal.db, got %q", cfg.JournalPath)
	}
	if cfg.CacheSize != 16 {
		t.Errorf("expected CacheSize=16, got %d", cfg.CacheSize)
	}
	if cfg.DefaultTTL != 300 {
		t.Errorf("expected DefaultTTL=300, got %d", cfg.DefaultTTL)
	}
	if !cfg.WaitForDone {
		t.Error("expected WaitForDone=true")
	}
}

func TestLoad_MissingEndpoint(t *testing.T) {
	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error when endpoint is unset")
	}
}

func TestLoad_InvalidEndpoint(t *testing.T) {
	tests := []string{
		"dns.example.net",
		"ftp://dns.example.net",
		"https://",
	}
	for _, endpoint := range tests {
		t.Run(endpoint, func(t *testing.T) {
			t.Setenv("DNSCTL_ENDPOINT", endpoint)
			_, err := Load()
			if err == nil {
				t.Fatalf("expected validation error for endpoint %q", endpoint)
			}
		})
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("DNSCTL_ENDPOINT", "https://dns.example.net")
	t.Setenv("DNSCTL_ENV", "staging")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid DNSCTL_ENV, got nil")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("DNSCTL_ENDPOINT", "https://dns.example.net")
	t.Setenv("DNSCTL_LOG_LEVEL", "trace")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid LOG_LEVEL, got nil")
	}
}

func TestLoad_CacheSizeNaN(t *testing.T) {
	t.Setenv("DNSCTL_ENDPOINT", "https://dns.example.net")
	t.Setenv("DNSCTL_CACHE_SIZE", "not_a_number")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for non-numeric CACHE_SIZE, got nil")
	}
}

func TestLoad_WhenKoanfDefaultLoadFails(t *testing.T) {
	orig := defaultLoader
	defaultLoader = func(k *koanf.Koanf) error { return errors.New("mocked error") }
	defer func() { defaultLoader = orig }()

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked error") {
		t.Fatal("expected error when loading defaults, got nil")
	}
}

func TestLoad_WhenKoanfEnvLoadFails(t *testing.T) {
	orig := envLoader
	envLoader = func(k *koanf.Koanf) error { return errors.New("mocked error") }
	defer func() { envLoader = orig }()

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked error") {
		t.Fatal("expected error when loading env, got nil")
	}
}

func TestLoad_RegisterValidationFails(t *testing.T) {
	orig := registerValidation
	registerValidation = func(v *validator.Validate) error { return errors.New("mocked validation error") }
	defer func() { registerValidation = orig }()

	t.Setenv("DNSCTL_ENDPOINT", "https://dns.example.net")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked validation error") {
		t.Fatal("expected error when registering validation, got nil")
	}
}
