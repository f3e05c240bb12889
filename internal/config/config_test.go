package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderAnthropic {
		t.Errorf("expected default provider %q, got %q", ProviderAnthropic, cfg.Provider)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Sampling.Temperature != 0.7 || cfg.Sampling.TopP != 0.9 || cfg.Sampling.MaxTokens != 3000 {
		t.Errorf("unexpected default sampling: %+v", cfg.Sampling)
	}
	if cfg.Letterhead.Company == "" || cfg.Letterhead.SignerName == "" {
		t.Error("letterhead defaults are incomplete")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.pqrs.yml")

	original := DefaultConfig()
	original.Provider = ProviderOpenAI
	original.Model = "gpt-4o"
	original.Port = 9090
	original.Letterhead.Company = "Aguas del Norte"
	original.Sampling.MaxTokens = 1500

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Provider != original.Provider {
		t.Errorf("provider: got %q, want %q", loaded.Provider, original.Provider)
	}
	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.Letterhead.Company != original.Letterhead.Company {
		t.Errorf("company: got %q, want %q", loaded.Letterhead.Company, original.Letterhead.Company)
	}
	if loaded.Sampling.MaxTokens != original.Sampling.MaxTokens {
		t.Errorf("max_tokens: got %d, want %d", loaded.Sampling.MaxTokens, original.Sampling.MaxTokens)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Provider != ProviderAnthropic {
		t.Errorf("expected default provider, got %q", cfg.Provider)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("PQRS_PROVIDER", "openai")
	t.Setenv("PQRS_MODEL", "gpt-4o-mini")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Provider != ProviderOpenAI {
		t.Errorf("env override failed: got %q, want %q", loaded.Provider, ProviderOpenAI)
	}
	if loaded.Model != "gpt-4o-mini" {
		t.Errorf("env override failed: got model %q", loaded.Model)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad provider", func(c *Config) { c.Provider = "bedrock" }},
		{"empty model", func(c *Config) { c.Model = "" }},
		{"port zero", func(c *Config) { c.Port = 0 }},
		{"port too big", func(c *Config) { c.Port = 70000 }},
		{"negative rpm", func(c *Config) { c.RateLimitRPM = -1 }},
		{"temperature", func(c *Config) { c.Sampling.Temperature = 3 }},
		{"top_p", func(c *Config) { c.Sampling.TopP = 0 }},
		{"max_tokens", func(c *Config) { c.Sampling.MaxTokens = 0 }},
		{"company", func(c *Config) { c.Letterhead.Company = "" }},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		c.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}
