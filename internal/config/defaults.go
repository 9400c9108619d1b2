package config

// providerDefaults maps each provider to its default chat and embedding
// models.
var providerDefaults = map[ProviderType]struct {
	Model          string
	EmbeddingModel string
}{
	ProviderOpenAI: {Model: "gpt-4o-mini", EmbeddingModel: "text-embedding-3-small"},
	ProviderOllama: {Model: "llama3", EmbeddingModel: "nomic-embed-text"},
}

// DefaultConfig returns a Config with sensible defaults. LLM features are
// off until an operator picks a provider.
func DefaultConfig() *Config {
	return &Config{
		Port:               8080,
		DataDir:            "data",
		Provider:           ProviderNone,
		EmbeddingProvider:  ProviderNone,
		MaxRecommendations: 10,
		MinScore:           0,
		AllowedOrigins:     []string{"*"},
	}
}

// DefaultModels returns the default chat and embedding models for a
// provider. Unknown providers get empty strings.
func DefaultModels(p ProviderType) (model, embeddingModel string) {
	d, ok := providerDefaults[p]
	if !ok {
		return "", ""
	}
	return d.Model, d.EmbeddingModel
}
