package models

import (
	"fmt"

	"festa/pkg/bound"
	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
)

const (
	MaxItemNameLen        = 64
	MaxItemDescriptionLen = 1024
	MaxFormItems          = 64
)

// FormItem is one question of a form. A nil Conditions means the item is always
// shown and its body alone decides whether it is required.
type FormItem struct {
	id          id.FormItemID
	name        bound.String
	description bound.String
	conditions  *ItemConditions
	body        ItemBody
}

// NewFormItem validates the name (1..64 runes), description (up to 1024 runes) and
// that a body is present.
func NewFormItem(itemID id.FormItemID, name, description string, conditions *ItemConditions, body ItemBody) (*FormItem, error) {
	if uuidIsNil(itemID) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "form item id required")
	}
	n, err := bound.NewNonEmptyString(name, MaxItemNameLen)
	if err != nil {
		return nil, invariant(err, "form item name")
	}
	d, err := bound.NewString(description, 0, MaxItemDescriptionLen)
	if err != nil {
		return nil, invariant(err, "form item description")
	}
	if body == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "form item body required")
	}
	return &FormItem{id: itemID, name: n, description: d, conditions: conditions, body: body}, nil
}

func (i *FormItem) ID() id.FormItemID           { return i.id }
func (i *FormItem) Name() string                { return i.name.Value() }
func (i *FormItem) Description() string         { return i.description.Value() }
func (i *FormItem) Conditions() *ItemConditions { return i.conditions }
func (i *FormItem) Body() ItemBody              { return i.body }
func (i *FormItem) HasConditions() bool         { return i.conditions != nil }

// ConditionReferenceError reports a condition literal that does not point at an
// earlier item of the right kind, or names a choice that item does not have.
type ConditionReferenceError struct {
	ItemID   id.FormItemID
	TargetID id.FormItemID
	Reason   string
}

func (e *ConditionReferenceError) Error() string {
	return fmt.Sprintf("condition on item %s references item %s: %s", e.ItemID, e.TargetID, e.Reason)
}

// FormItems is the ordered, non-empty item list of a form.
type FormItems struct {
	items []*FormItem
}

// NewFormItems validates 1..MaxFormItems items with unique ids. Every condition literal
// must reference an item declared before the conditioned one, whose body kind matches
// the literal and which has the referenced box, button or column.
func NewFormItems(items []*FormItem) (FormItems, error) {
	if err := bound.CheckLen(len(items), 1, MaxFormItems, "form items"); err != nil {
		return FormItems{}, invariant(err, "form items")
	}
	seen := make(map[id.FormItemID]*FormItem, len(items))
	for _, item := range items {
		if item == nil {
			return FormItems{}, dErrors.New(dErrors.CodeInvariantViolation, "form item is nil")
		}
		if _, dup := seen[item.id]; dup {
			return FormItems{}, dErrors.New(dErrors.CodeInvariantViolation, "duplicated form item id "+item.id.String())
		}
		if item.conditions != nil {
			for _, lit := range item.conditions.literals() {
				if err := checkReference(item.id, lit, seen); err != nil {
					return FormItems{}, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "invalid item condition")
				}
			}
		}
		seen[item.id] = item
	}
	return FormItems{items: append([]*FormItem(nil), items...)}, nil
}

// MustFormItems creates FormItems, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustFormItems(items ...*FormItem) FormItems {
	fi, err := NewFormItems(items)
	if err != nil {
		panic(err)
	}
	return fi
}

func checkReference(itemID id.FormItemID, lit ItemCondition, earlier map[id.FormItemID]*FormItem) error {
	target, ok := earlier[lit.TargetItemID()]
	if !ok {
		reason := "not declared before this item"
		if lit.TargetItemID() == itemID {
			reason = "self reference"
		}
		return &ConditionReferenceError{ItemID: itemID, TargetID: lit.TargetItemID(), Reason: reason}
	}
	if target.body.Kind() != lit.TargetKind() {
		return &ConditionReferenceError{
			ItemID:   itemID,
			TargetID: lit.TargetItemID(),
			Reason:   fmt.Sprintf("expected %s item, found %s", lit.TargetKind(), target.body.Kind()),
		}
	}
	var known bool
	switch c := lit.(type) {
	case CheckboxCondition:
		known = target.body.(*CheckboxBody).HasBox(c.CheckboxID)
	case RadioCondition:
		known = target.body.(*RadioBody).HasButton(c.ButtonID)
	case GridRadioCondition:
		known = target.body.(*GridRadioBody).HasColumn(c.ColumnID)
	}
	if !known {
		return &ConditionReferenceError{ItemID: itemID, TargetID: lit.TargetItemID(), Reason: "unknown choice id"}
	}
	return nil
}

// Items returns the items in form order.
func (f FormItems) Items() []*FormItem {
	return append([]*FormItem(nil), f.items...)
}

func (f FormItems) Len() int { return len(f.items) }

// At returns the i-th item.
func (f FormItems) At(i int) *FormItem { return f.items[i] }

// Get finds an item by id.
func (f FormItems) Get(itemID id.FormItemID) (*FormItem, bool) {
	for _, item := range f.items {
		if item.id == itemID {
			return item, true
		}
	}
	return nil, false
}

func (f FormItems) IsZero() bool { return len(f.items) == 0 }
