package flows

import "time"

// ChoiceButton is one constrained answer choice offered for a question.
type ChoiceButton struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Question is a single step in a conversational flow. A question with an
// empty MappingKey collects no field (a purely informational step).
type Question struct {
	ID         string         `json:"id"`
	Prompt     string         `json:"prompt"`
	MappingKey string         `json:"mapping_key,omitempty"`
	Buttons    []ChoiceButton `json:"buttons,omitempty"`
}

// Flow is a tenant-configured conversational flow: the ordered question set
// the chatbot walks a lead through. Answers are keyed by each question's
// mapping key.
type Flow struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenant_id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
