package rules

// Lower converts a concept-addressed tree to its tenant-persistable
// field-addressed form. It is a pure structural projection: no catalog is
// consulted, so one authored rule can be lowered once per tenant and the
// concept→field binding is derived lazily at evaluation time. For each leaf
// the stored field id is the pinned field id when present, else the concept
// id, else empty.
//
// Lowering is lossy: which alias produced a concept match is not recorded,
// so Raise cannot reconstruct the original concept annotation.
func Lower(tree ConceptGroup) FieldGroup {
	out := FieldGroup{
		Logic:    tree.Logic,
		Children: make([]FieldNode, 0, len(tree.Children)),
	}
	for _, child := range tree.Children {
		out.Children = append(out.Children, lowerNode(child))
	}
	return out
}

func lowerNode(n ConceptNode) FieldNode {
	switch n.Kind {
	case KindGroup:
		if n.Group == nil {
			return GroupNode(FieldGroup{Logic: LogicAnd})
		}
		g := Lower(*n.Group)
		return GroupNode(g)
	default:
		if n.Condition == nil {
			return ConditionNode(FieldCondition{})
		}
		c := n.Condition
		fieldID := c.Ref.FieldID
		if fieldID == "" {
			fieldID = c.Ref.ConceptID
		}
		return ConditionNode(FieldCondition{
			Ref:      FieldRef{FieldID: fieldID},
			Operator: c.Operator,
			Value:    c.Value,
			Weight:   c.Weight,
		})
	}
}

// Raise converts a field-addressed tree back to concept-addressed form for
// editing. It never guesses a concept: each leaf's stored field string is
// wrapped as a pinned field id with an empty concept annotation, so
// Raise(Lower(x)) preserves operator, value, and weight but not the original
// reference discriminant.
func Raise(tree FieldGroup) ConceptGroup {
	out := ConceptGroup{
		Logic:    tree.Logic,
		Children: make([]ConceptNode, 0, len(tree.Children)),
	}
	for _, child := range tree.Children {
		out.Children = append(out.Children, raiseNode(child))
	}
	return out
}

func raiseNode(n FieldNode) ConceptNode {
	switch n.Kind {
	case KindGroup:
		if n.Group == nil {
			return GroupNode(ConceptGroup{Logic: LogicAnd})
		}
		g := Raise(*n.Group)
		return GroupNode(g)
	default:
		if n.Condition == nil {
			return ConditionNode(ConceptCondition{})
		}
		c := n.Condition
		return ConditionNode(ConceptCondition{
			Ref:      ConceptRef{FieldID: c.Ref.FieldID},
			Operator: c.Operator,
			Value:    c.Value,
			Weight:   c.Weight,
		})
	}
}
