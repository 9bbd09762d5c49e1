package answer

import (
	id "festa/pkg/domain"
)

// Lookup answers condition queries about items already answered. It satisfies
// models.AnswerLookup. An item that was not recorded reads as nothing checked and
// nothing selected.
type Lookup struct {
	bodies map[id.FormItemID]ItemBody
}

func NewLookup() *Lookup {
	return &Lookup{bodies: make(map[id.FormItemID]ItemBody)}
}

// Record stores the answer body of an item, replacing any earlier one.
func (l *Lookup) Record(itemID id.FormItemID, body ItemBody) {
	l.bodies[itemID] = body
}

func (l *Lookup) IsChecked(itemID id.FormItemID, boxID id.CheckboxID) bool {
	c, ok := l.bodies[itemID].(Checkbox)
	return ok && c.Contains(boxID)
}

func (l *Lookup) SelectedRadio(itemID id.FormItemID) (id.RadioButtonID, bool) {
	r, ok := l.bodies[itemID].(Radio)
	if !ok || r.Selected == nil {
		return id.RadioButtonID{}, false
	}
	return *r.Selected, true
}

func (l *Lookup) IsGridColumnSelected(itemID id.FormItemID, columnID id.GridRadioColumnID) bool {
	g, ok := l.bodies[itemID].(GridRadio)
	return ok && g.HasColumn(columnID)
}
