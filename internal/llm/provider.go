package llm

import "context"

// Provider is a chat-completion backend.
type Provider interface {
	// Complete sends one completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the provider's short name, e.g. "openai".
	Name() string
}
