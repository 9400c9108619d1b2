package fieldcatalog

import (
	"regexp"
	"unicode"

	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/flows"
)

// placeholderValue matches choice values that carry no meaning, such as the
// default button ids a flow editor generates ("button-1", "btn2", "option-3").
var placeholderValue = regexp.MustCompile(`(?i)^(button|btn|option)-?\d+$`)

// isPlaceholder reports whether a choice value should be discarded as
// non-meaningful: editor-generated button ids and very short alphabetic
// tokens ("ab", "x") that are almost certainly stubs.
func isPlaceholder(value string) bool {
	if placeholderValue.MatchString(value) {
		return true
	}
	if len(value) <= 2 {
		for _, r := range value {
			if !unicode.IsLetter(r) {
				return false
			}
		}
		return true
	}
	return false
}

// Build derives the tenant's field catalog from its flows, using the
// last-wins collision policy. The catalog is a pure function of its input;
// callers rebuild it whenever flow definitions change.
func Build(reg *concepts.Registry, flws []flows.Flow) []Field {
	return BuildWithPolicy(reg, flws, CollisionLastWins)
}

// BuildWithPolicy derives the field catalog with an explicit collision
// policy. Questions without a mapping key produce no field. When the same
// mapping key appears in several flows the policy decides which question's
// definition is kept; under last-wins the field keeps its original catalog
// position but takes the later definition.
func BuildWithPolicy(reg *concepts.Registry, flws []flows.Flow, policy CollisionPolicy) []Field {
	var order []string
	byID := make(map[string]Field)

	for _, flow := range flws {
		for _, q := range flow.Questions {
			if q.MappingKey == "" {
				continue
			}

			if _, seen := byID[q.MappingKey]; seen && policy == CollisionFirstWins {
				continue
			}

			f := Field{
				ID:         q.MappingKey,
				Label:      q.Prompt,
				OriginFlow: flow.ID,
				Kind:       KindText,
			}

			for _, b := range q.Buttons {
				if isPlaceholder(b.Value) {
					continue
				}
				f.RawValues = append(f.RawValues, b.Value)
			}
			if len(q.Buttons) > 0 {
				f.Kind = KindSelect
			}

			f.Concept = reg.FindConceptForField(q.MappingKey, q.Prompt)
			if f.Concept != nil {
				f.NormalizedValues = make([]string, len(f.RawValues))
				for i, v := range f.RawValues {
					f.NormalizedValues[i] = concepts.NormalizeValue(f.Concept, v)
				}
			} else {
				f.NormalizedValues = f.RawValues
			}

			if _, seen := byID[q.MappingKey]; !seen {
				order = append(order, q.MappingKey)
			}
			byID[q.MappingKey] = f
		}
	}

	catalog := make([]Field, 0, len(order))
	for _, id := range order {
		catalog = append(catalog, byID[id])
	}
	return catalog
}

// FindField returns the field with the given id, or nil.
func FindField(fieldID string, catalog []Field) *Field {
	for i := range catalog {
		if catalog[i].ID == fieldID {
			return &catalog[i]
		}
	}
	return nil
}

// FindFieldByConcept returns the first field in catalog order whose resolved
// concept has the given id, or nil.
func FindFieldByConcept(conceptID string, catalog []Field) *Field {
	for i := range catalog {
		if catalog[i].Concept != nil && catalog[i].Concept.ID == conceptID {
			return &catalog[i]
		}
	}
	return nil
}

// GroupByConcept buckets the catalog's concept-resolved fields by concept id.
func GroupByConcept(catalog []Field) map[string][]Field {
	groups := make(map[string][]Field)
	for _, f := range catalog {
		if f.Concept == nil {
			continue
		}
		groups[f.Concept.ID] = append(groups[f.Concept.ID], f)
	}
	return groups
}

// CustomFields returns the fields that resolve to no concept. They remain
// usable in rules by field id.
func CustomFields(catalog []Field) []Field {
	var custom []Field
	for _, f := range catalog {
		if f.Concept == nil {
			custom = append(custom, f)
		}
	}
	return custom
}
