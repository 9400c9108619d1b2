// Package llm abstracts the chat-completion providers used to draft advice
// rules from natural language.
package llm

// Role identifies a message sender in a chat exchange.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single message in a chat exchange.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest carries the parameters for one completion call. An empty
// Model falls back to the provider's configured default. JSONMode asks the
// provider to constrain output to a JSON object; rule drafting depends on it.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
	JSONMode    bool
}

// CompletionResponse is the result of a completion call.
type CompletionResponse struct {
	Content      string
	InputTokens  int
	OutputTokens int
	Model        string
	FinishReason string
}
