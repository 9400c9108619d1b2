package advice

import (
	"fmt"

	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/rules"
)

// ValidateAuthored checks a concept-addressed rule tree at the authoring
// boundary: every leaf must reference a known concept or pin a field id, and
// every group must use a known logic operator. The evaluator itself never
// validates — a malformed leaf just evaluates to a non-match — so this is
// the place authoring mistakes surface.
func ValidateAuthored(reg *concepts.Registry, tree *rules.ConceptGroup) error {
	if tree == nil {
		return nil
	}
	return validateGroup(reg, *tree, "rule")
}

func validateGroup(reg *concepts.Registry, g rules.ConceptGroup, path string) error {
	if g.Logic != rules.LogicAnd && g.Logic != rules.LogicOr {
		return fmt.Errorf("%s: unknown logic %q", path, g.Logic)
	}
	for i, child := range g.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		switch child.Kind {
		case rules.KindGroup:
			if child.Group == nil {
				return fmt.Errorf("%s: group node without a group", childPath)
			}
			if err := validateGroup(reg, *child.Group, childPath); err != nil {
				return err
			}
		case rules.KindCondition:
			if child.Condition == nil {
				return fmt.Errorf("%s: condition node without a condition", childPath)
			}
			ref := child.Condition.Ref
			if ref.ConceptID == "" && ref.FieldID == "" {
				return fmt.Errorf("%s: condition references neither a concept nor a field", childPath)
			}
			if ref.ConceptID != "" && reg.Get(ref.ConceptID) == nil {
				return fmt.Errorf("%s: unknown concept %q", childPath, ref.ConceptID)
			}
		default:
			return fmt.Errorf("%s: unknown node kind %q", childPath, child.Kind)
		}
	}
	return nil
}
