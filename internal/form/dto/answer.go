package dto

import (
	"fmt"

	"festa/internal/form/answer"
	"festa/internal/form/models"
	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
)

// GridRow is the column chosen for one grid radio row.
type GridRow struct {
	RowID    id.GridRadioRowID     `json:"row_id" yaml:"row_id"`
	ColumnID *id.GridRadioColumnID `json:"column_id,omitempty" yaml:"column_id,omitempty"`
}

// FileRef attaches a shared file. Type is filled in by the server from the file store
// and only read from documents by offline tooling.
type FileRef struct {
	SharingID id.FileSharingID `json:"sharing_id" yaml:"sharing_id"`
	Type      string           `json:"type,omitempty" yaml:"type,omitempty"`
}

// AnswerBody carries the fields of every answer kind; Type selects which apply.
type AnswerBody struct {
	Type     string            `json:"type" yaml:"type"`
	Text     string            `json:"text,omitempty" yaml:"text,omitempty"`
	Integer  *int64            `json:"integer,omitempty" yaml:"integer,omitempty"`
	Checks   []id.CheckboxID   `json:"checks,omitempty" yaml:"checks,omitempty"`
	Selected *id.RadioButtonID `json:"selected,omitempty" yaml:"selected,omitempty"`
	Rows     []GridRow         `json:"rows,omitempty" yaml:"rows,omitempty"`
	Files    []FileRef         `json:"files,omitempty" yaml:"files,omitempty"`
}

func (b AnswerBody) ToModel() (answer.ItemBody, error) {
	switch models.ItemKind(b.Type) {
	case models.KindText:
		return answer.Text{Value: b.Text}, nil
	case models.KindInteger:
		return answer.Integer{Value: b.Integer}, nil
	case models.KindCheckbox:
		return answer.NewCheckbox(b.Checks)
	case models.KindRadio:
		return answer.Radio{Selected: b.Selected}, nil
	case models.KindGridRadio:
		rows := make([]answer.GridRadioRow, len(b.Rows))
		for i, r := range b.Rows {
			rows[i] = answer.GridRadioRow{RowID: r.RowID, Column: r.ColumnID}
		}
		return answer.GridRadio{Rows: rows}, nil
	case models.KindFile:
		refs := make([]answer.FileRef, len(b.Files))
		for i, f := range b.Files {
			refs[i] = answer.FileRef{SharingID: f.SharingID, Type: f.Type}
		}
		return answer.NewFile(refs)
	}
	return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown answer type %q", b.Type))
}

func FromAnswerBody(body answer.ItemBody) AnswerBody {
	out := AnswerBody{Type: string(body.Kind())}
	switch b := body.(type) {
	case answer.Text:
		out.Text = b.Value
	case answer.Integer:
		out.Integer = b.Value
	case answer.Checkbox:
		out.Checks = b.Checked()
	case answer.Radio:
		out.Selected = b.Selected
	case answer.GridRadio:
		for _, r := range b.Rows {
			out.Rows = append(out.Rows, GridRow{RowID: r.RowID, ColumnID: r.Column})
		}
	case answer.File:
		for _, f := range b.Files() {
			out.Files = append(out.Files, FileRef{SharingID: f.SharingID, Type: f.Type})
		}
	}
	return out
}

// AnswerItem answers one form item; a nil Body leaves it out.
type AnswerItem struct {
	ItemID id.FormItemID `json:"item_id" yaml:"item_id"`
	Body   *AnswerBody   `json:"body,omitempty" yaml:"body,omitempty"`
}

// Answer is the full answer to a form, in item order.
type Answer []AnswerItem

func (a Answer) ToModel() (answer.Answer, error) {
	out := make(answer.Answer, len(a))
	for i, item := range a {
		out[i].ItemID = item.ItemID
		if item.Body == nil {
			continue
		}
		body, err := item.Body.ToModel()
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeOf(err), fmt.Sprintf("answer item %d", i))
		}
		out[i].Body = body
	}
	return out, nil
}

func FromAnswer(a answer.Answer) Answer {
	out := make(Answer, len(a))
	for i, item := range a {
		out[i].ItemID = item.ItemID
		if item.Body != nil {
			body := FromAnswerBody(item.Body)
			out[i].Body = &body
		}
	}
	return out
}

// AnswerError is the response body for a rejected answer.
type AnswerError struct {
	Error    string                `json:"error"`
	ItemID   *id.FormItemID        `json:"item_id,omitempty"`
	Expected string                `json:"expected,omitempty"`
	Got      string                `json:"got,omitempty"`
	ColumnID *id.GridRadioColumnID `json:"column_id,omitempty"`
}

func FromCheckError(e *answer.Error) AnswerError {
	out := AnswerError{Error: string(e.Kind), Expected: e.Expected, Got: e.Got, ColumnID: e.ColumnID}
	if e.ItemID != (id.FormItemID{}) {
		itemID := e.ItemID
		out.ItemID = &itemID
	}
	return out
}
