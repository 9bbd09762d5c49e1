package answer

import (
	"fmt"
	"strconv"
	"strings"

	"festa/internal/form/models"
	id "festa/pkg/domain"
)

// Check validates ans against the form items. The structure is checked first (one
// answer per item, same order, same ids); then every item is checked in form order so
// that conditions see the answers before them. The first violation is returned as an
// *Error; nil means the answer is accepted.
//
// Check does no I/O and is safe for concurrent use.
func Check(items models.FormItems, ans Answer) error {
	if len(ans) != items.Len() {
		return &Error{
			Kind:     KindMismatchedItemsLength,
			Expected: strconv.Itoa(items.Len()),
			Got:      strconv.Itoa(len(ans)),
		}
	}
	for i, item := range items.Items() {
		if ans[i].ItemID != item.ID() {
			return &Error{
				Kind:     KindMismatchedItemID,
				ItemID:   item.ID(),
				Expected: item.ID().String(),
				Got:      ans[i].ItemID.String(),
			}
		}
	}

	prior := NewLookup()
	for i, item := range items.Items() {
		body := ans[i].Body
		if err := checkItem(item, body, prior); err != nil {
			return err
		}
		if body != nil {
			prior.Record(item.ID(), body)
		}
	}
	return nil
}

func checkItem(item *models.FormItem, body ItemBody, prior models.AnswerLookup) error {
	active := !item.HasConditions() || item.Conditions().Evaluate(prior)
	required := active && item.Body().IsRequired()

	if body == nil {
		switch {
		case !required:
			return nil
		case item.HasConditions():
			return itemError(KindNotAnsweredWithCondition, item.ID())
		default:
			return itemError(KindNotAnsweredWithoutCondition, item.ID())
		}
	}

	if body.Kind() != item.Body().Kind() {
		return &Error{
			Kind:     KindMismatchedItemType,
			ItemID:   item.ID(),
			Expected: string(item.Body().Kind()),
			Got:      string(body.Kind()),
		}
	}
	if !active && !item.Body().AcceptsAnswerWhenHidden() && !body.IsEmpty() {
		return itemError(KindUnexpectedAnswer, item.ID())
	}

	switch schema := item.Body().(type) {
	case *models.TextBody:
		if a, ok := body.(Text); ok {
			return checkText(item.ID(), schema, a, required)
		}
	case *models.IntegerBody:
		if a, ok := body.(Integer); ok {
			return checkInteger(item.ID(), schema, a, required)
		}
	case *models.CheckboxBody:
		if a, ok := body.(Checkbox); ok {
			return checkCheckbox(item.ID(), schema, a, required)
		}
	case *models.RadioBody:
		if a, ok := body.(Radio); ok {
			return checkRadio(item.ID(), schema, a, required)
		}
	case *models.GridRadioBody:
		if a, ok := body.(GridRadio); ok {
			return checkGridRadio(item.ID(), schema, a, required)
		}
	case *models.FileBody:
		if a, ok := body.(File); ok {
			return checkFile(item.ID(), schema, a, required)
		}
	}
	return &Error{
		Kind:     KindMismatchedItemType,
		ItemID:   item.ID(),
		Expected: string(item.Body().Kind()),
		Got:      fmt.Sprintf("%T", body),
	}
}

func checkText(itemID id.FormItemID, schema *models.TextBody, ans Text, required bool) error {
	if ans.IsEmpty() {
		if required {
			return itemError(KindNotAnsweredText, itemID)
		}
		return nil
	}
	spec := schema.Spec()
	n := ans.runeLen()
	if spec.MinLength != nil && n < *spec.MinLength {
		return itemError(KindTooShortText, itemID)
	}
	if n > models.MaxTextLength || (spec.MaxLength != nil && n > *spec.MaxLength) {
		return itemError(KindTooLongText, itemID)
	}
	if !spec.AcceptsMultipleLines && strings.ContainsAny(ans.Value, "\r\n") {
		return itemError(KindNotAllowedMultipleLineText, itemID)
	}
	return nil
}

func checkInteger(itemID id.FormItemID, schema *models.IntegerBody, ans Integer, required bool) error {
	if ans.Value == nil {
		if required {
			return itemError(KindNotAnsweredInteger, itemID)
		}
		return nil
	}
	spec := schema.Spec()
	v := *ans.Value
	if spec.Min != nil && v < *spec.Min {
		return itemError(KindTooSmallInteger, itemID)
	}
	if spec.Max != nil && v > *spec.Max {
		return itemError(KindTooBigInteger, itemID)
	}
	return nil
}

func checkCheckbox(itemID id.FormItemID, schema *models.CheckboxBody, ans Checkbox, required bool) error {
	if ans.IsEmpty() && !required {
		return nil
	}
	spec := schema.Spec()
	n := len(ans.checked)
	if spec.MinChecks != nil && n < *spec.MinChecks {
		return itemError(KindTooFewChecks, itemID)
	}
	if spec.MaxChecks != nil && n > *spec.MaxChecks {
		return itemError(KindTooManyChecks, itemID)
	}
	for _, boxID := range ans.checked {
		if !schema.HasBox(boxID) {
			return itemError(KindUnknownCheckboxID, itemID)
		}
	}
	return nil
}

func checkRadio(itemID id.FormItemID, schema *models.RadioBody, ans Radio, required bool) error {
	if ans.Selected == nil {
		if required {
			return itemError(KindNotAnsweredRadio, itemID)
		}
		return nil
	}
	if !schema.HasButton(*ans.Selected) {
		return itemError(KindUnknownRadioID, itemID)
	}
	return nil
}

func checkGridRadio(itemID id.FormItemID, schema *models.GridRadioBody, ans GridRadio, required bool) error {
	rowIDs := schema.RowIDs()
	if len(ans.Rows) != len(rowIDs) {
		return &Error{
			Kind:     KindMismatchedGridRadioRowsLength,
			ItemID:   itemID,
			Expected: strconv.Itoa(len(rowIDs)),
			Got:      strconv.Itoa(len(ans.Rows)),
		}
	}
	for i, row := range ans.Rows {
		if row.RowID != rowIDs[i] {
			return &Error{
				Kind:     KindMismatchedGridRadioRowID,
				ItemID:   itemID,
				Expected: rowIDs[i].String(),
				Got:      row.RowID.String(),
			}
		}
	}
	for _, row := range ans.Rows {
		if row.Column != nil && !schema.HasColumn(*row.Column) {
			col := *row.Column
			return &Error{Kind: KindUnknownGridRadioColumnID, ItemID: itemID, ColumnID: &col}
		}
	}
	if required {
		for _, row := range ans.Rows {
			if row.Column == nil {
				return itemError(KindNotAnsweredGridRadioRows, itemID)
			}
		}
	}
	if schema.ExclusiveColumn() {
		used := make(map[id.GridRadioColumnID]struct{}, len(ans.Rows))
		for _, row := range ans.Rows {
			if row.Column == nil {
				continue
			}
			if _, dup := used[*row.Column]; dup {
				col := *row.Column
				return &Error{Kind: KindNotAllowedDuplicatedGridRadioColumn, ItemID: itemID, ColumnID: &col}
			}
			used[*row.Column] = struct{}{}
		}
	}
	return nil
}

func checkFile(itemID id.FormItemID, schema *models.FileBody, ans File, required bool) error {
	if ans.IsEmpty() {
		if required {
			return itemError(KindNotAnsweredFile, itemID)
		}
		return nil
	}
	if len(ans.files) > 1 && !schema.AcceptsMultipleFiles() {
		return itemError(KindNotAllowedMultipleFiles, itemID)
	}
	for _, f := range ans.files {
		if !schema.AllowsType(f.Type) {
			return itemError(KindNotAllowedFileType, itemID)
		}
	}
	return nil
}
