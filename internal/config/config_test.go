package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DataDir != "data" {
		t.Errorf("expected default data_dir %q, got %q", "data", cfg.DataDir)
	}
	if cfg.Provider != ProviderNone {
		t.Errorf("expected LLM features off by default, got provider %q", cfg.Provider)
	}
	if cfg.MaxRecommendations != 10 {
		t.Errorf("expected default max_recommendations 10, got %d", cfg.MaxRecommendations)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.leadmatch.yml")

	original := DefaultConfig()
	original.Port = 9000
	original.Provider = ProviderOpenAI
	original.Model = "gpt-4o-mini"
	original.EmbeddingProvider = ProviderOpenAI
	original.EmbeddingModel = "text-embedding-3-small"
	original.MinScore = 1.5
	original.AllowedOrigins = []string{"https://app.example.com"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.Provider != original.Provider {
		t.Errorf("provider: got %q, want %q", loaded.Provider, original.Provider)
	}
	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.MinScore != original.MinScore {
		t.Errorf("min_score: got %f, want %f", loaded.MinScore, original.MinScore)
	}
	if len(loaded.AllowedOrigins) != 1 || loaded.AllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("allowed_origins: got %v", loaded.AllowedOrigins)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	// A missing file returns defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("LEADMATCH_PORT", "9999")
	t.Setenv("LEADMATCH_DATA_DIR", "/var/lib/leadmatch")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9999 {
		t.Errorf("env override failed: port = %d, want 9999", loaded.Port)
	}
	if loaded.DataDir != "/var/lib/leadmatch" {
		t.Errorf("env override failed: data_dir = %q", loaded.DataDir)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for port 0")
	}

	cfg = DefaultConfig()
	cfg.DataDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty data_dir")
	}

	cfg = DefaultConfig()
	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown provider")
	}

	cfg = DefaultConfig()
	cfg.Provider = ProviderOpenAI
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for provider without model")
	}

	cfg = DefaultConfig()
	cfg.MinScore = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative min_score")
	}
}

func TestDefaultModels(t *testing.T) {
	model, embed := DefaultModels(ProviderOpenAI)
	if model != "gpt-4o-mini" || embed != "text-embedding-3-small" {
		t.Errorf("openai defaults = %q/%q", model, embed)
	}
	model, embed = DefaultModels(ProviderNone)
	if model != "" || embed != "" {
		t.Errorf("none should have no default models, got %q/%q", model, embed)
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	if got := APIKeyEnvVar(ProviderOpenAI); got != "OPENAI_API_KEY" {
		t.Errorf("APIKeyEnvVar(openai) = %q", got)
	}
	if got := APIKeyEnvVar(ProviderOllama); got != "" {
		t.Errorf("APIKeyEnvVar(ollama) = %q, want empty", got)
	}
}
