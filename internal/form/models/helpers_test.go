package models

import (
	"github.com/google/uuid"

	id "festa/pkg/domain"
)

func newItemID() id.FormItemID          { return id.FormItemID(uuid.New()) }
func newBoxID() id.CheckboxID           { return id.CheckboxID(uuid.New()) }
func newButtonID() id.RadioButtonID     { return id.RadioButtonID(uuid.New()) }
func newRowID() id.GridRadioRowID       { return id.GridRadioRowID(uuid.New()) }
func newColumnID() id.GridRadioColumnID { return id.GridRadioColumnID(uuid.New()) }
func newProjectID() id.ProjectID        { return id.ProjectID(uuid.New()) }
func intPtr(v int) *int                 { return &v }
func int64Ptr(v int64) *int64           { return &v }

// fakeLookup is an AnswerLookup backed by maps.
type fakeLookup struct {
	checked  map[id.FormItemID][]id.CheckboxID
	radio    map[id.FormItemID]id.RadioButtonID
	gridCols map[id.FormItemID][]id.GridRadioColumnID
}

func (l fakeLookup) IsChecked(itemID id.FormItemID, boxID id.CheckboxID) bool {
	for _, b := range l.checked[itemID] {
		if b == boxID {
			return true
		}
	}
	return false
}

func (l fakeLookup) SelectedRadio(itemID id.FormItemID) (id.RadioButtonID, bool) {
	v, ok := l.radio[itemID]
	return v, ok
}

func (l fakeLookup) IsGridColumnSelected(itemID id.FormItemID, columnID id.GridRadioColumnID) bool {
	for _, c := range l.gridCols[itemID] {
		if c == columnID {
			return true
		}
	}
	return false
}

func checkboxBody(boxes ...id.CheckboxID) *CheckboxBody {
	spec := CheckboxSpec{}
	for i, b := range boxes {
		spec.Boxes = append(spec.Boxes, Checkbox{ID: b, Label: string(rune('A' + i))})
	}
	body, err := NewCheckboxBody(spec)
	if err != nil {
		panic(err)
	}
	return body
}

func radioBody(required bool, buttons ...id.RadioButtonID) *RadioBody {
	spec := RadioSpec{IsRequired: required}
	for i, b := range buttons {
		spec.Buttons = append(spec.Buttons, RadioButton{ID: b, Label: string(rune('A' + i))})
	}
	body, err := NewRadioBody(spec)
	if err != nil {
		panic(err)
	}
	return body
}

func mustItem(itemID id.FormItemID, conds *ItemConditions, body ItemBody) *FormItem {
	item, err := NewFormItem(itemID, "item", "", conds, body)
	if err != nil {
		panic(err)
	}
	return item
}
