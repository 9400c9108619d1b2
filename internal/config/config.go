// Package config loads leadmatch configuration from .leadmatch.yml with
// LEADMATCH_* environment overrides layered on top.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultPath is the conventional config file location.
const DefaultPath = ".leadmatch.yml"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LEADMATCH_*). A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// LEADMATCH_PORT -> port, LEADMATCH_DATA_DIR -> data_dir, etc.
	if err := k.Load(env.Provider("LEADMATCH_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LEADMATCH_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validProviders = map[ProviderType]bool{
	ProviderOpenAI: true,
	ProviderOllama: true,
	ProviderNone:   true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Port)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if !validProviders[c.Provider] {
		return fmt.Errorf("invalid provider %q: must be one of openai, ollama, none", c.Provider)
	}
	if !validProviders[c.EmbeddingProvider] {
		return fmt.Errorf("invalid embedding_provider %q: must be one of openai, ollama, none", c.EmbeddingProvider)
	}
	if c.Provider != ProviderNone && c.Model == "" {
		return fmt.Errorf("model is required when provider is set")
	}
	if c.EmbeddingProvider != ProviderNone && c.EmbeddingModel == "" {
		return fmt.Errorf("embedding_model is required when embedding_provider is set")
	}
	if c.MaxRecommendations < 0 {
		return fmt.Errorf("max_recommendations must be non-negative")
	}
	if c.MinScore < 0 {
		return fmt.Errorf("min_score must be non-negative")
	}
	return nil
}

// APIKeyEnvVar returns the conventional environment variable holding the
// API key for a provider, or "" when none is needed.
func APIKeyEnvVar(provider ProviderType) string {
	if provider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return ""
}
