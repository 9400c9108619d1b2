package config

// ProviderType identifies an LLM or embedding provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
	// ProviderNone disables the LLM-backed features; matching works without them.
	ProviderNone ProviderType = "none"
)

// Config is the top-level leadmatch configuration, corresponding to
// .leadmatch.yml.
type Config struct {
	Port               int          `yaml:"port" koanf:"port"`
	DataDir            string       `yaml:"data_dir" koanf:"data_dir"`
	Provider           ProviderType `yaml:"provider" koanf:"provider"`
	Model              string       `yaml:"model" koanf:"model"`
	EmbeddingProvider  ProviderType `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel     string       `yaml:"embedding_model" koanf:"embedding_model"`
	MaxRecommendations int          `yaml:"max_recommendations" koanf:"max_recommendations"`
	MinScore           float64      `yaml:"min_score" koanf:"min_score"`
	AllowedOrigins     []string     `yaml:"allowed_origins" koanf:"allowed_origins"`
}
