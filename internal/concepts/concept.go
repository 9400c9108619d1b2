package concepts

import "strings"

// ValueType describes the domain of values a concept can take.
type ValueType string

const (
	ValueCategorical ValueType = "categorical"
	ValueNumeric     ValueType = "numeric"
	ValueText        ValueType = "text"
)

// Concept is a stable, tenant-independent domain notion such as "timeline"
// or "budget". Advice rules are authored against concepts; tenant question
// sets expose ad-hoc field identifiers that resolve to concepts via aliases.
type Concept struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`

	// Aliases are field-name spellings that identify this concept.
	// Matching is case-insensitive exact match; the concept id itself
	// always counts as an alias.
	Aliases []string `json:"aliases"`

	ValueType ValueType `json:"value_type"`

	// CommonValues are the canonical categorical values, in display order.
	// Empty for non-categorical concepts.
	CommonValues []string `json:"common_values,omitempty"`

	// Normalizations maps lowercase free-form input to a canonical value.
	// Many inputs may map to one canonical value.
	Normalizations map[string]string `json:"normalizations,omitempty"`

	// Examples are phrases used for weak matching against question text
	// when no alias matches.
	Examples []string `json:"examples,omitempty"`
}

// HasAlias reports whether name matches the concept id or one of its
// aliases, case-insensitively.
func (c *Concept) HasAlias(name string) bool {
	if strings.EqualFold(name, c.ID) {
		return true
	}
	for _, a := range c.Aliases {
		if strings.EqualFold(name, a) {
			return true
		}
	}
	return false
}
