package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/propertyloop/leadmatch/internal/advice"
	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/llm"
	"github.com/propertyloop/leadmatch/internal/rules"
)

// Drafter turns a natural-language targeting brief into a concept-addressed
// rule tree using an LLM, then validates the result against the registry so
// hallucinated concept ids never reach persistence.
type Drafter struct {
	provider llm.Provider
	registry *concepts.Registry
}

// NewDrafter creates a rule drafter over the given completion provider.
func NewDrafter(provider llm.Provider, registry *concepts.Registry) *Drafter {
	return &Drafter{provider: provider, registry: registry}
}

// Draft asks the model to translate a brief like "buyers moving within three
// months on a tight budget" into a rule tree. The returned tree is validated
// but not lowered; callers decide when to bind it to a tenant.
func (d *Drafter) Draft(ctx context.Context, brief string) (*rules.ConceptGroup, error) {
	resp, err := d.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: d.systemPrompt()},
			{Role: llm.RoleUser, Content: brief},
		},
		Temperature: 0.2,
		JSONMode:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("drafting rule: %w", err)
	}

	var tree rules.ConceptGroup
	if err := json.Unmarshal([]byte(resp.Content), &tree); err != nil {
		return nil, fmt.Errorf("model returned invalid rule JSON: %w", err)
	}
	if err := advice.ValidateAuthored(d.registry, &tree); err != nil {
		return nil, fmt.Errorf("model returned an invalid rule: %w", err)
	}
	return &tree, nil
}

func (d *Drafter) systemPrompt() string {
	var sb strings.Builder
	sb.WriteString(`You translate a targeting brief into a JSON rule tree for matching real-estate leads.

Respond with a single JSON object of this shape:
{"logic":"AND","children":[{"kind":"condition","condition":{"ref":{"concept_id":"timeline"},"operator":"equals","value":"0-3","weight":2}}]}

Rules:
- "logic" is "AND" or "OR". Nest groups as {"kind":"group","group":{...}}.
- "operator" is one of "equals", "includes", "not_equals".
- "value" is a string, or an array of strings for includes-any-of.
- "weight" is a positive number reflecting how important the condition is.
- Use ONLY these concept ids:
`)
	for _, c := range d.registry.All() {
		fmt.Fprintf(&sb, "  - %s: %s\n", c.ID, c.Description)
		if len(c.CommonValues) > 0 {
			fmt.Fprintf(&sb, "    values: %s\n", strings.Join(c.CommonValues, ", "))
		}
	}
	return sb.String()
}
