package rules

import (
	"testing"

	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/fieldcatalog"
	"github.com/propertyloop/leadmatch/internal/flows"
)

// testCatalog builds a catalog with a timeline field (concept-resolved, so
// "asap" normalizes to "0-3"), a budget field, and a concept-free pets field.
func testCatalog(t *testing.T) []fieldcatalog.Field {
	t.Helper()
	flws := []flows.Flow{{
		ID: "flow-1",
		Questions: []flows.Question{
			{ID: "q1", Prompt: "How soon are you moving?", MappingKey: "timeline"},
			{ID: "q2", Prompt: "Your price range?", MappingKey: "price_range"},
			{ID: "q3", Prompt: "Do you have pets?", MappingKey: "pets"},
		},
	}}
	return fieldcatalog.Build(concepts.Builtin(), flws)
}

func fieldCond(fieldID string, op Operator, v Value, weight float64) FieldNode {
	return ConditionNode(FieldCondition{
		Ref:      FieldRef{FieldID: fieldID},
		Operator: op,
		Value:    v,
		Weight:   weight,
	})
}

func TestEmptyGroups(t *testing.T) {
	catalog := testCatalog(t)
	answers := map[string]string{}

	and := EvaluateGroup(FieldGroup{Logic: LogicAnd}, answers, catalog)
	if !and.Matched || and.Score != 0 {
		t.Errorf("empty AND = %+v, want matched with score 0", and)
	}

	or := EvaluateGroup(FieldGroup{Logic: LogicOr}, answers, catalog)
	if or.Matched || or.Score != 0 {
		t.Errorf("empty OR = %+v, want non-match with score 0", or)
	}
}

func TestEqualsCaseInsensitive(t *testing.T) {
	catalog := testCatalog(t)
	g := FieldGroup{
		Logic: LogicAnd,
		Children: []FieldNode{
			fieldCond("pets", OpEquals, ListValue("Downsizing"), 1),
		},
	}
	r := EvaluateGroup(g, map[string]string{"pets": "downsizing"}, catalog)
	if !r.Matched || r.Score != 1 {
		t.Errorf("equals should be case-insensitive, got %+v", r)
	}
}

func TestNotEqualsNegatesEquals(t *testing.T) {
	catalog := testCatalog(t)
	answers := map[string]string{"pets": "downsizing"}

	for _, value := range []string{"Downsizing", "upsizing"} {
		eq := EvaluateGroup(FieldGroup{
			Logic:    LogicAnd,
			Children: []FieldNode{fieldCond("pets", OpEquals, ListValue(value), 1)},
		}, answers, catalog)
		ne := EvaluateGroup(FieldGroup{
			Logic:    LogicAnd,
			Children: []FieldNode{fieldCond("pets", OpNotEquals, ListValue(value), 1)},
		}, answers, catalog)
		if eq.Matched == ne.Matched {
			t.Errorf("not_equals must negate equals for value %q: eq=%+v ne=%+v", value, eq, ne)
		}
	}
}

func TestIncludesSubstringForScalarValue(t *testing.T) {
	catalog := testCatalog(t)
	g := FieldGroup{
		Logic: LogicAnd,
		Children: []FieldNode{
			fieldCond("pets", OpIncludes, SingleValue("GOLDEN"), 1),
		},
	}
	r := EvaluateGroup(g, map[string]string{"pets": "two golden retrievers"}, catalog)
	if !r.Matched {
		t.Errorf("scalar includes should be a case-insensitive substring test, got %+v", r)
	}
}

func TestIncludesMembershipForListValue(t *testing.T) {
	catalog := testCatalog(t)
	mk := func(v Value) Result {
		return EvaluateGroup(FieldGroup{
			Logic:    LogicAnd,
			Children: []FieldNode{fieldCond("pets", OpIncludes, v, 1)},
		}, map[string]string{"pets": "dog"}, catalog)
	}

	if r := mk(ListValue("cat", "dog")); !r.Matched {
		t.Errorf("list includes should match on exact membership, got %+v", r)
	}
	// List membership is exact and case-sensitive.
	if r := mk(ListValue("Dog")); r.Matched {
		t.Errorf("list includes must be case-sensitive, got %+v", r)
	}
}

func TestMissingAnswerIsNonMatch(t *testing.T) {
	catalog := testCatalog(t)
	g := FieldGroup{
		Logic: LogicAnd,
		Children: []FieldNode{
			fieldCond("timeline", OpEquals, ListValue("0-3"), 2),
		},
	}
	r := EvaluateGroup(g, map[string]string{}, catalog)
	if r.Matched || r.Score != 0 || r.Unsupported {
		t.Errorf("missing answer = %+v, want plain non-match", r)
	}
}

func TestScoreDoesNotLeakFromUnmatchedAnd(t *testing.T) {
	catalog := testCatalog(t)
	g := FieldGroup{
		Logic: LogicAnd,
		Children: []FieldNode{
			fieldCond("timeline", OpEquals, ListValue("0-3"), 3),
			fieldCond("pets", OpEquals, ListValue("yes"), 1),
		},
	}
	// Only the weight-3 condition matches.
	r := EvaluateGroup(g, map[string]string{"timeline": "asap"}, catalog)
	if r.Matched {
		t.Fatalf("AND with one failing child must not match: %+v", r)
	}
	if r.Score != 0 {
		t.Errorf("score = %v, want 0 (no partial-AND leak)", r.Score)
	}
}

func TestNumericOperatorsAreUnsupported(t *testing.T) {
	catalog := testCatalog(t)
	for _, op := range []Operator{OpGreaterThan, OpLessThan, OpBetween} {
		g := FieldGroup{
			Logic: LogicAnd,
			Children: []FieldNode{
				fieldCond("pets", op, ListValue("1", "5"), 1),
			},
		}
		r := EvaluateGroup(g, map[string]string{"pets": "3"}, catalog)
		if r.Matched {
			t.Errorf("%s should not match", op)
		}
		if !r.Unsupported {
			t.Errorf("%s should be flagged unsupported, got %+v", op, r)
		}
	}
}

func TestUnknownOperatorIsUnsupported(t *testing.T) {
	catalog := testCatalog(t)
	g := FieldGroup{
		Logic: LogicAnd,
		Children: []FieldNode{
			fieldCond("pets", Operator("matches_regex"), SingleValue(".*"), 1),
		},
	}
	r := EvaluateGroup(g, map[string]string{"pets": "dog"}, catalog)
	if r.Matched || !r.Unsupported {
		t.Errorf("unknown operator = %+v, want unsupported non-match", r)
	}
}

func TestMalformedLeafIsNonMatch(t *testing.T) {
	catalog := testCatalog(t)
	g := FieldGroup{
		Logic: LogicAnd,
		Children: []FieldNode{
			fieldCond("", OpEquals, ListValue("x"), 1),
		},
	}
	r := EvaluateGroup(g, map[string]string{"timeline": "asap"}, catalog)
	if r.Matched || r.Score != 0 {
		t.Errorf("leaf with no reference = %+v, want non-match", r)
	}
}

func TestLoweredConceptRuleEndToEnd(t *testing.T) {
	catalog := testCatalog(t)

	authored := ConceptGroup{
		Logic: LogicAnd,
		Children: []ConceptNode{
			conceptCond("timeline", OpEquals, ListValue("0-3"), 2),
		},
	}
	lowered := Lower(authored)

	tests := []struct {
		name    string
		answers map[string]string
		matched bool
		score   float64
	}{
		{"normalized answer matches", map[string]string{"timeline": "asap"}, true, 2},
		{"different bucket", map[string]string{"timeline": "12+"}, false, 0},
		{"no answer", map[string]string{}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := EvaluateGroup(lowered, tt.answers, catalog)
			if r.Matched != tt.matched || r.Score != tt.score {
				t.Errorf("got %+v, want matched=%v score=%v", r, tt.matched, tt.score)
			}
		})
	}
}

func TestConceptRefResolvesThroughCatalogField(t *testing.T) {
	catalog := testCatalog(t)

	// The budget concept is carried by the price_range field; a
	// concept-addressed rule must find the answer under that field id.
	g := ConceptGroup{
		Logic: LogicAnd,
		Children: []ConceptNode{
			conceptCond("budget", OpEquals, ListValue("under-400k"), 1),
		},
	}
	r := EvaluateGroup(g, map[string]string{"price_range": "under $400,000"}, catalog)
	if !r.Matched || r.Score != 1 {
		t.Errorf("concept ref should resolve via price_range, got %+v", r)
	}
}

func TestNestedGroups(t *testing.T) {
	catalog := testCatalog(t)

	// (timeline=0-3 AND budget=under-400k) OR pets=dog
	inner := FieldGroup{
		Logic: LogicAnd,
		Children: []FieldNode{
			fieldCond("timeline", OpEquals, ListValue("0-3"), 2),
			fieldCond("price_range", OpEquals, ListValue("under-400k"), 3),
		},
	}
	g := FieldGroup{
		Logic: LogicOr,
		Children: []FieldNode{
			GroupNode(inner),
			fieldCond("pets", OpEquals, ListValue("dog"), 5),
		},
	}

	// Inner AND fires: score is the sum of its children.
	r := EvaluateGroup(g, map[string]string{"timeline": "asap", "price_range": "under 400k"}, catalog)
	if !r.Matched || r.Score != 5 {
		t.Errorf("inner AND fires: got %+v, want matched score 5", r)
	}

	// Only the outer leaf fires: the failed inner AND contributes nothing.
	r = EvaluateGroup(g, map[string]string{"timeline": "asap", "pets": "dog"}, catalog)
	if !r.Matched || r.Score != 5 {
		t.Errorf("only leaf fires: got %+v, want matched score 5", r)
	}

	// Nothing fires.
	r = EvaluateGroup(g, map[string]string{"timeline": "12+"}, catalog)
	if r.Matched || r.Score != 0 {
		t.Errorf("nothing fires: got %+v, want non-match score 0", r)
	}
}
