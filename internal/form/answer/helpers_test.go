package answer

import (
	"github.com/google/uuid"

	"festa/internal/form/models"
	id "festa/pkg/domain"
)

func newItemID() id.FormItemID          { return id.FormItemID(uuid.New()) }
func newBoxID() id.CheckboxID           { return id.CheckboxID(uuid.New()) }
func newButtonID() id.RadioButtonID     { return id.RadioButtonID(uuid.New()) }
func newRowID() id.GridRadioRowID       { return id.GridRadioRowID(uuid.New()) }
func newColumnID() id.GridRadioColumnID { return id.GridRadioColumnID(uuid.New()) }
func newSharingID() id.FileSharingID    { return id.FileSharingID(uuid.New()) }
func intPtr(v int) *int                 { return &v }
func int64Ptr(v int64) *int64           { return &v }

func selected(b id.RadioButtonID) Radio { return Radio{Selected: &b} }

func item(itemID id.FormItemID, conds *models.ItemConditions, body models.ItemBody) *models.FormItem {
	it, err := models.NewFormItem(itemID, "item", "", conds, body)
	if err != nil {
		panic(err)
	}
	return it
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func checkboxSpec(min, max *int, boxes ...id.CheckboxID) models.CheckboxSpec {
	spec := models.CheckboxSpec{MinChecks: min, MaxChecks: max}
	for _, b := range boxes {
		spec.Boxes = append(spec.Boxes, models.Checkbox{ID: b, Label: "box"})
	}
	return spec
}

func radioSpec(required bool, buttons ...id.RadioButtonID) models.RadioSpec {
	spec := models.RadioSpec{IsRequired: required}
	for _, b := range buttons {
		spec.Buttons = append(spec.Buttons, models.RadioButton{ID: b, Label: "button"})
	}
	return spec
}

// single builds a one-item form and the matching answer wrapper.
func single(body models.ItemBody) (models.FormItems, func(ItemBody) Answer) {
	itemID := newItemID()
	items := models.MustFormItems(item(itemID, nil, body))
	return items, func(b ItemBody) Answer { return Answer{{ItemID: itemID, Body: b}} }
}

func kindOf(err error) ErrorKind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return ""
}
