package fieldcatalog

import "github.com/propertyloop/leadmatch/internal/concepts"

// Kind describes how a field's values are collected.
type Kind string

const (
	// KindSelect fields constrain answers to a known choice set.
	KindSelect Kind = "select"
	// KindText fields accept free text.
	KindText Kind = "text"
)

// CollisionPolicy decides which question wins when the same mapping key
// appears in more than one flow.
type CollisionPolicy string

const (
	// CollisionLastWins keeps the definition from the flow processed last.
	// This mirrors real-world reuse of field ids across flows.
	CollisionLastWins CollisionPolicy = "last_wins"
	// CollisionFirstWins keeps the first definition seen.
	CollisionFirstWins CollisionPolicy = "first_wins"
)

// Field is a tenant-specific observable derived from a mapped question.
// A field either resolves to exactly one concept or to none at all (a
// "custom field", still addressable by its id); alias resolution takes
// priority over question-text resolution, so the mapping is never ambiguous.
type Field struct {
	// ID is the question's mapping key, unique within the tenant.
	ID string `json:"id"`
	// Label is the question text that produced the field.
	Label string `json:"label"`
	// OriginFlow is the id of the flow the field came from.
	OriginFlow string `json:"origin_flow"`
	Kind       Kind   `json:"kind"`
	// RawValues are the literal choice values offered to the lead, with
	// placeholder-looking values filtered out.
	RawValues []string `json:"raw_values,omitempty"`
	// Concept is the resolved concept, nil for custom fields.
	Concept *concepts.Concept `json:"concept,omitempty"`
	// NormalizedValues are RawValues passed through the resolved concept's
	// normalization table. Equal to RawValues when no concept resolved.
	NormalizedValues []string `json:"normalized_values,omitempty"`
}
