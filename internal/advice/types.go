package advice

import (
	"time"

	"github.com/propertyloop/leadmatch/internal/rules"
)

// Advice is one piece of targeted guidance shown to a qualified lead. Its
// Rule decides applicability: the field-addressed tree is what gets
// evaluated; the concept-addressed tree it was authored as is kept alongside
// for editing, since raising the lowered tree cannot recover the concept
// annotations.
type Advice struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	// FlowID optionally scopes the advice to one flow; empty means
	// tenant-wide.
	FlowID   string `json:"flow_id,omitempty"`
	Title    string `json:"title"`
	Body     string `json:"body"` // markdown
	Category string `json:"category"`

	Rule     *rules.FieldGroup   `json:"rule,omitempty"`
	Authored *rules.ConceptGroup `json:"authored_rule,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
