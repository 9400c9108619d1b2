// Package rules implements the boolean rule trees that decide which advice
// applies to a lead: the tree model in its two addressing schemes, the
// converter between them, and the recursive evaluator.
package rules

import (
	"encoding/json"
	"fmt"
)

// Logic is a group node's boolean combinator.
type Logic string

const (
	LogicAnd Logic = "AND"
	LogicOr  Logic = "OR"
)

// Operator is a condition leaf's match operator.
type Operator string

const (
	OpEquals      Operator = "equals"
	OpIncludes    Operator = "includes"
	OpNotEquals   Operator = "not_equals"
	OpGreaterThan Operator = "greater_than"
	OpLessThan    Operator = "less_than"
	OpBetween     Operator = "between"
)

// FieldRef addresses a condition leaf by a concrete tenant field id. Trees
// built on FieldRef are tenant-bound; they are what gets persisted and
// evaluated. After lowering, FieldID may actually hold a concept id — the
// evaluator resolves that lazily against the live catalog.
type FieldRef struct {
	FieldID string `json:"field_id"`
}

// ConceptRef addresses a condition leaf by a portable concept id. Trees
// built on ConceptRef travel across tenants and are what authoring and
// recommendation tools produce. An editor may additionally pin a concrete
// FieldID; lowering prefers it when present.
type ConceptRef struct {
	ConceptID string `json:"concept_id"`
	FieldID   string `json:"field_id,omitempty"`
	Label     string `json:"label,omitempty"`
}

// Ref is implemented by both addressing schemes. ids returns the field id
// and concept id a reference carries; either may be empty.
type Ref interface {
	ids() (fieldID, conceptID string)
}

func (r FieldRef) ids() (string, string)   { return r.FieldID, "" }
func (r ConceptRef) ids() (string, string) { return r.FieldID, r.ConceptID }

// NodeKind tags the two variants of a tree node.
type NodeKind string

const (
	KindGroup     NodeKind = "group"
	KindCondition NodeKind = "condition"
)

// Node is one element of a rule tree: a group or a condition leaf. The Kind
// tag discriminates; exactly one of Group and Condition is set.
type Node[R Ref] struct {
	Kind      NodeKind      `json:"kind"`
	Group     *Group[R]     `json:"group,omitempty"`
	Condition *Condition[R] `json:"condition,omitempty"`
}

// Group is an AND/OR combination of child nodes. Zero- and one-child groups
// are degenerate but legal: a zero-child AND matches vacuously, a zero-child
// OR never matches, and a single child passes through.
type Group[R Ref] struct {
	Logic    Logic     `json:"logic"`
	Children []Node[R] `json:"children"`
}

// Condition is a leaf comparison of one observed value against the rule's
// value(s). Weight counts toward the score only when the condition matches;
// zero means the default weight of 1.
type Condition[R Ref] struct {
	Ref      R        `json:"ref"`
	Operator Operator `json:"operator"`
	Value    Value    `json:"value"`
	Weight   float64  `json:"weight,omitempty"`
}

// Tree instantiations for the two addressing schemes. The root of a rule
// tree is always a group.
type (
	ConceptGroup     = Group[ConceptRef]
	ConceptNode      = Node[ConceptRef]
	ConceptCondition = Condition[ConceptRef]
	FieldGroup       = Group[FieldRef]
	FieldNode        = Node[FieldRef]
	FieldCondition   = Condition[FieldRef]
)

// GroupNode wraps a group as a child node.
func GroupNode[R Ref](g Group[R]) Node[R] {
	return Node[R]{Kind: KindGroup, Group: &g}
}

// ConditionNode wraps a condition as a child node.
func ConditionNode[R Ref](c Condition[R]) Node[R] {
	return Node[R]{Kind: KindCondition, Condition: &c}
}

// Value is a rule comparison value: a single string or a list. Whether the
// value was authored as a list changes the includes operator's semantics, so
// the distinction survives serialization.
type Value struct {
	single string
	list   []string
}

// SingleValue returns a scalar comparison value.
func SingleValue(s string) Value { return Value{single: s} }

// ListValue returns a list comparison value. Between uses a two-element list.
func ListValue(items ...string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{list: items}
}

// IsList reports whether the value was authored as a list.
func (v Value) IsList() bool { return v.list != nil }

// Items returns the value as a slice for uniform handling: the list itself,
// or a one-element slice of the scalar.
func (v Value) Items() []string {
	if v.list != nil {
		return v.list
	}
	return []string{v.single}
}

// MarshalJSON encodes a scalar as a JSON string and a list as a JSON array.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.list != nil {
		return json.Marshal(v.list)
	}
	return json.Marshal(v.single)
}

// UnmarshalJSON accepts either a JSON string or an array of strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Value{single: s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("rule value must be a string or an array of strings: %w", err)
	}
	if list == nil {
		list = []string{}
	}
	*v = Value{list: list}
	return nil
}
