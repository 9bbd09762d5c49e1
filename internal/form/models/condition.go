package models

import (
	"fmt"

	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
)

// Bounds on an item's condition DNF.
const (
	MaxConditionConjunctions = 16
	MaxConditionLiterals     = 16
)

// AnswerLookup exposes the answers given to items earlier in the same form. An item
// without an answer reports nothing checked and nothing selected.
type AnswerLookup interface {
	IsChecked(itemID id.FormItemID, boxID id.CheckboxID) bool
	SelectedRadio(itemID id.FormItemID) (id.RadioButtonID, bool)
	IsGridColumnSelected(itemID id.FormItemID, columnID id.GridRadioColumnID) bool
}

// ItemCondition is one literal of an item's condition DNF. It refers to the answer of
// another item in the same form.
type ItemCondition interface {
	// TargetItemID is the item whose answer the literal inspects.
	TargetItemID() id.FormItemID
	// TargetKind is the body kind the referenced item must have.
	TargetKind() ItemKind
	Matches(prior AnswerLookup) bool
	isItemCondition()
}

// CheckboxCondition holds when the box's checked state equals Expected.
type CheckboxCondition struct {
	ItemID     id.FormItemID
	CheckboxID id.CheckboxID
	Expected   bool
}

func (c CheckboxCondition) TargetItemID() id.FormItemID { return c.ItemID }
func (c CheckboxCondition) TargetKind() ItemKind        { return KindCheckbox }
func (c CheckboxCondition) Matches(prior AnswerLookup) bool {
	return prior.IsChecked(c.ItemID, c.CheckboxID) == c.Expected
}
func (c CheckboxCondition) isItemCondition() {}

// RadioCondition holds when "ButtonID is the selected button" equals Expected.
type RadioCondition struct {
	ItemID   id.FormItemID
	ButtonID id.RadioButtonID
	Expected bool
}

func (c RadioCondition) TargetItemID() id.FormItemID { return c.ItemID }
func (c RadioCondition) TargetKind() ItemKind        { return KindRadio }
func (c RadioCondition) Matches(prior AnswerLookup) bool {
	selected, ok := prior.SelectedRadio(c.ItemID)
	return (ok && selected == c.ButtonID) == c.Expected
}
func (c RadioCondition) isItemCondition() {}

// GridRadioCondition holds when "some row selected ColumnID" equals Expected.
type GridRadioCondition struct {
	ItemID   id.FormItemID
	ColumnID id.GridRadioColumnID
	Expected bool
}

func (c GridRadioCondition) TargetItemID() id.FormItemID { return c.ItemID }
func (c GridRadioCondition) TargetKind() ItemKind        { return KindGridRadio }
func (c GridRadioCondition) Matches(prior AnswerLookup) bool {
	return prior.IsGridColumnSelected(c.ItemID, c.ColumnID) == c.Expected
}
func (c GridRadioCondition) isItemCondition() {}

// ItemConditions is an OR of ANDs of ItemCondition literals.
type ItemConditions struct {
	conjunctions [][]ItemCondition
}

// NewItemConditions validates 1..MaxConditionConjunctions conjunctions of
// 1..MaxConditionLiterals literals each.
func NewItemConditions(conjunctions [][]ItemCondition) (*ItemConditions, error) {
	if len(conjunctions) == 0 || len(conjunctions) > MaxConditionConjunctions {
		return nil, dErrors.New(dErrors.CodeInvariantViolation,
			fmt.Sprintf("conditions must have 1 to %d conjunctions, got %d", MaxConditionConjunctions, len(conjunctions)))
	}
	out := make([][]ItemCondition, len(conjunctions))
	for i, conj := range conjunctions {
		if len(conj) == 0 || len(conj) > MaxConditionLiterals {
			return nil, dErrors.New(dErrors.CodeInvariantViolation,
				fmt.Sprintf("condition conjunction %d must have 1 to %d literals, got %d", i, MaxConditionLiterals, len(conj)))
		}
		for j, lit := range conj {
			if lit == nil {
				return nil, dErrors.New(dErrors.CodeInvariantViolation,
					fmt.Sprintf("condition conjunction %d literal %d is nil", i, j))
			}
		}
		out[i] = append([]ItemCondition(nil), conj...)
	}
	return &ItemConditions{conjunctions: out}, nil
}

// MustItemConditions creates ItemConditions, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustItemConditions(conjunctions ...[]ItemCondition) *ItemConditions {
	c, err := NewItemConditions(conjunctions)
	if err != nil {
		panic(err)
	}
	return c
}

// Evaluate reports whether any conjunction has all of its literals matching.
func (c *ItemConditions) Evaluate(prior AnswerLookup) bool {
	for _, conj := range c.conjunctions {
		if conjunctionHolds(conj, prior) {
			return true
		}
	}
	return false
}

func conjunctionHolds(conj []ItemCondition, prior AnswerLookup) bool {
	for _, lit := range conj {
		if !lit.Matches(prior) {
			return false
		}
	}
	return true
}

// Conjunctions returns a copy of the DNF.
func (c *ItemConditions) Conjunctions() [][]ItemCondition {
	out := make([][]ItemCondition, len(c.conjunctions))
	for i, conj := range c.conjunctions {
		out[i] = append([]ItemCondition(nil), conj...)
	}
	return out
}

func (c *ItemConditions) literals() []ItemCondition {
	var out []ItemCondition
	for _, conj := range c.conjunctions {
		out = append(out, conj...)
	}
	return out
}
