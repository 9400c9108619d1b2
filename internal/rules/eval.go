package rules

import (
	"strings"

	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/fieldcatalog"
)

// Result is the outcome of evaluating a rule node against a lead's answers.
// Score is meaningful only when Matched is true; a non-matching node always
// scores zero so partial scores never leak into ranking.
type Result struct {
	Matched bool    `json:"matched"`
	Score   float64 `json:"score"`

	// Unsupported is set when at least one condition used an operator this
	// evaluator does not implement (the numeric comparisons). Such
	// conditions evaluate as non-matches, but the flag lets callers and
	// tests tell "correctly failed to match" from "operator not
	// implemented".
	Unsupported bool `json:"unsupported,omitempty"`
}

// EvaluateGroup walks a rule tree against a flat answer map and the tenant's
// field catalog. Evaluation is a single pass with no side effects; missing
// answers and unresolvable references are normal non-matches, never errors.
func EvaluateGroup[R Ref](g Group[R], answers map[string]string, catalog []fieldcatalog.Field) Result {
	var (
		matched     int
		score       float64
		unsupported bool
	)
	for _, child := range g.Children {
		r := Evaluate(child, answers, catalog)
		if r.Matched {
			matched++
		}
		score += r.Score
		unsupported = unsupported || r.Unsupported
	}

	ok := false
	switch g.Logic {
	case LogicOr:
		ok = matched > 0
	default:
		// AND, including a vacuously true zero-child group.
		ok = matched == len(g.Children)
	}
	if !ok {
		score = 0
	}
	return Result{Matched: ok, Score: score, Unsupported: unsupported}
}

// Evaluate evaluates a single node, group or condition.
func Evaluate[R Ref](n Node[R], answers map[string]string, catalog []fieldcatalog.Field) Result {
	switch n.Kind {
	case KindGroup:
		if n.Group == nil {
			return Result{}
		}
		return EvaluateGroup(*n.Group, answers, catalog)
	case KindCondition:
		if n.Condition == nil {
			return Result{}
		}
		return evaluateCondition(*n.Condition, answers, catalog)
	default:
		return Result{}
	}
}

func evaluateCondition[R Ref](c Condition[R], answers map[string]string, catalog []fieldcatalog.Field) Result {
	raw, field, ok := observedValue(c.Ref, answers, catalog)
	if !ok {
		return Result{}
	}

	observed := raw
	if field != nil && field.Concept != nil {
		observed = concepts.NormalizeValue(field.Concept, raw)
	}

	matched := false
	switch c.Operator {
	case OpEquals:
		matched = equalsAny(observed, c.Value.Items())
	case OpNotEquals:
		matched = !equalsAny(observed, c.Value.Items())
	case OpIncludes:
		if c.Value.IsList() {
			// Exact, case-sensitive membership for list values.
			for _, item := range c.Value.Items() {
				if observed == item {
					matched = true
					break
				}
			}
		} else {
			matched = strings.Contains(strings.ToLower(observed), strings.ToLower(c.Value.Items()[0]))
		}
	case OpGreaterThan, OpLessThan, OpBetween:
		// Numeric comparison is intentionally not implemented; see Result.
		return Result{Unsupported: true}
	default:
		return Result{Unsupported: true}
	}

	if !matched {
		return Result{}
	}
	weight := c.Weight
	if weight == 0 {
		weight = 1
	}
	return Result{Matched: true, Score: weight}
}

func equalsAny(observed string, items []string) bool {
	for _, item := range items {
		if strings.EqualFold(observed, item) {
			return true
		}
	}
	return false
}

// observedValue resolves the value a condition compares against. A concept
// reference resolves through the catalog's first field for that concept. A
// field reference reads the answer directly; failing that, the stored field
// string may itself be a concept id (lowering writes concept ids into the
// field slot), so the concept path is retried before giving up. No observed
// value means the condition cannot match.
func observedValue[R Ref](ref R, answers map[string]string, catalog []fieldcatalog.Field) (string, *fieldcatalog.Field, bool) {
	fieldID, conceptID := ref.ids()

	if conceptID != "" {
		if f := fieldcatalog.FindFieldByConcept(conceptID, catalog); f != nil {
			if v, present := answers[f.ID]; present {
				return v, f, true
			}
		}
	}

	if fieldID != "" {
		if v, present := answers[fieldID]; present {
			return v, fieldcatalog.FindField(fieldID, catalog), true
		}
		if f := fieldcatalog.FindFieldByConcept(fieldID, catalog); f != nil {
			if v, present := answers[f.ID]; present {
				return v, f, true
			}
		}
	}

	return "", nil, false
}
