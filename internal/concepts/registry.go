package concepts

import "strings"

// Registry is an ordered, read-only catalog of concepts. It is loaded once
// at process start and is safe for unrestricted concurrent reads. Lookups
// are linear scans with first-match-wins tie-breaks; the catalog stays small
// (well under a hundred entries) so no index is kept.
type Registry struct {
	concepts []Concept
}

// NewRegistry creates a registry over the given concepts. Registry order is
// significant: it is the tie-break for alias and example-phrase matches.
func NewRegistry(concepts []Concept) *Registry {
	return &Registry{concepts: concepts}
}

// Builtin returns the registry of built-in real-estate concepts.
func Builtin() *Registry {
	return builtinRegistry
}

var builtinRegistry = NewRegistry(builtinConcepts)

// All returns every concept in registry order.
func (r *Registry) All() []Concept {
	return r.concepts
}

// Get returns the concept with the given id, or nil.
func (r *Registry) Get(id string) *Concept {
	for i := range r.concepts {
		if r.concepts[i].ID == id {
			return &r.concepts[i]
		}
	}
	return nil
}

// FindConceptForField resolves a tenant field identifier to a concept.
// It first tries a case-insensitive exact match of fieldID against every
// concept's alias set (first match wins). If no alias matches and
// questionText is non-empty, it falls back to a weak match: the first
// concept with an example phrase contained in the question text wins.
// Returns nil when nothing matches; this function never errors.
func (r *Registry) FindConceptForField(fieldID, questionText string) *Concept {
	for i := range r.concepts {
		if r.concepts[i].HasAlias(fieldID) {
			return &r.concepts[i]
		}
	}
	if questionText == "" {
		return nil
	}
	lowerText := strings.ToLower(questionText)
	for i := range r.concepts {
		for _, ex := range r.concepts[i].Examples {
			if strings.Contains(lowerText, strings.ToLower(ex)) {
				return &r.concepts[i]
			}
		}
	}
	return nil
}

// NormalizeValue maps a free-form observed value to the concept's canonical
// form. The lookup key is the lowercased input; on a miss the raw value is
// returned unchanged. Normalization is best-effort enrichment, never a
// validation gate.
func NormalizeValue(c *Concept, raw string) string {
	if c == nil || len(c.Normalizations) == 0 {
		return raw
	}
	if canonical, ok := c.Normalizations[strings.ToLower(raw)]; ok {
		return canonical
	}
	return raw
}
