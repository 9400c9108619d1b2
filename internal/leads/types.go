package leads

import "time"

// Lead is one chatbot session's captured state: the flat map of answers
// keyed by field id (mapping key). Values are always strings; numeric and
// boolean answers are stringified upstream by the conversation layer.
type Lead struct {
	ID        string            `json:"id"`
	TenantID  string            `json:"tenant_id"`
	FlowID    string            `json:"flow_id,omitempty"`
	Answers   map[string]string `json:"answers"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
