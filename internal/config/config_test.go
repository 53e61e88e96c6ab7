package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Fatalf("unexpected default port %d", cfg.Server.Port)
	}
	if cfg.FrontendURL != "http://localhost:3001" {
		t.Fatalf("unexpected default frontend %q", cfg.FrontendURL)
	}
	if cfg.Session.TTLHours != 24 {
		t.Fatalf("unexpected default ttl %d", cfg.Session.TTLHours)
	}
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: 8080\nfrontendURL: http://file.example\nai:\n  model: gpt-4o\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FRONTEND_URL", "http://env.example")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("yaml port not applied: %d", cfg.Server.Port)
	}
	if cfg.AI.Model != "gpt-4o" {
		t.Fatalf("yaml model not applied: %q", cfg.AI.Model)
	}
	// environment wins over the file
	if cfg.FrontendURL != "http://env.example" {
		t.Fatalf("env override not applied: %q", cfg.FrontendURL)
	}
	if cfg.AI.APIKey != "sk-test" {
		t.Fatalf("api key not applied: %q", cfg.AI.APIKey)
	}
	if !cfg.Production {
		t.Fatalf("production flag not set from APP_ENV")
	}
}
