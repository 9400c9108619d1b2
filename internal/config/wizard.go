package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard walks an operator through the first-run configuration and saves
// the result to .leadmatch.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to leadmatch! Let's configure your instance.")
	fmt.Println()

	cfg := DefaultConfig()

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	dataPrompt := promptui.Prompt{
		Label:   "Data directory",
		Default: cfg.DataDir,
	}
	if cfg.DataDir, err = dataPrompt.Run(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	providerPrompt := promptui.Select{
		Label: "LLM provider for rule drafting (none disables it)",
		Items: []string{"none", "openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)

	if cfg.Provider != ProviderNone {
		model, embeddingModel := DefaultModels(cfg.Provider)
		modelPrompt := promptui.Prompt{
			Label:   "Chat model",
			Default: model,
		}
		if cfg.Model, err = modelPrompt.Run(); err != nil {
			return nil, fmt.Errorf("model: %w", err)
		}

		cfg.EmbeddingProvider = cfg.Provider
		embedPrompt := promptui.Prompt{
			Label:   "Embedding model for advice search",
			Default: embeddingModel,
		}
		if cfg.EmbeddingModel, err = embedPrompt.Run(); err != nil {
			return nil, fmt.Errorf("embedding model: %w", err)
		}

		if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" && os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: set %s in your environment before starting the server.\n", envVar)
		}
	}

	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}
