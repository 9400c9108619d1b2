package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/config"
	"github.com/propertyloop/leadmatch/internal/db"
	"github.com/propertyloop/leadmatch/internal/embeddings"
	"github.com/propertyloop/leadmatch/internal/llm"
	"github.com/propertyloop/leadmatch/internal/recommend"
)

// loadConfig loads and validates the config, pointing at `leadmatch init`
// when something is off.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `leadmatch init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w\nRun `leadmatch init` to reconfigure", err)
	}
	return cfg, nil
}

// openDatabase opens the SQLite database under the configured data directory.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	return db.Open(filepath.Join(cfg.DataDir, "leadmatch.db"))
}

// createDrafterFromConfig builds the LLM rule drafter, or nil when the
// provider is set to none.
func createDrafterFromConfig(cfg *config.Config, registry *concepts.Registry) (*recommend.Drafter, error) {
	if cfg.Provider == config.ProviderNone {
		return nil, nil
	}
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("creating LLM provider: %w", err)
	}
	return recommend.NewDrafter(provider, registry), nil
}

// createEmbedderFromConfig builds the configured embedder, or nil when the
// embedding provider is set to none.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	switch cfg.EmbeddingProvider {
	case config.ProviderNone:
		return nil, nil
	case config.ProviderOpenAI:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for OpenAI embeddings")
		}
		return embeddings.NewOpenAIEmbedder(apiKey, embeddings.OpenAIModel(cfg.EmbeddingModel)), nil
	case config.ProviderOllama:
		return embeddings.NewOllamaEmbedder(cfg.EmbeddingModel, 768, os.Getenv("OLLAMA_HOST")), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider %q", cfg.EmbeddingProvider)
	}
}
