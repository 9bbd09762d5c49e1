// Package answer holds submitted form answers and the engine that checks them against
// a form's items.
package answer

import (
	"unicode/utf8"

	"festa/internal/form/models"
	"festa/pkg/bound"
	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
)

// ItemBody is the answer given to one item. The set of implementations is closed and
// mirrors models.ItemBody.
type ItemBody interface {
	Kind() models.ItemKind
	// IsEmpty reports whether the body carries no actual input.
	IsEmpty() bool
	isAnswerBody()
}

// Item is the answer to one form item. A nil Body means the item was left out.
type Item struct {
	ItemID id.FormItemID
	Body   ItemBody
}

// Answer holds one Item per form item, in form order.
type Answer []Item

// Lookup indexes every present answer body by item id.
func (a Answer) Lookup() *Lookup {
	l := NewLookup()
	for _, item := range a {
		if item.Body != nil {
			l.Record(item.ItemID, item.Body)
		}
	}
	return l
}

// Text is a free-text answer. The empty string counts as unanswered.
type Text struct {
	Value string
}

func (Text) Kind() models.ItemKind { return models.KindText }
func (t Text) IsEmpty() bool       { return t.Value == "" }
func (Text) isAnswerBody()         {}

func (t Text) runeLen() int { return utf8.RuneCountInString(t.Value) }

// Integer is a numeric answer; nil is unanswered.
type Integer struct {
	Value *int64
}

func (Integer) Kind() models.ItemKind { return models.KindInteger }
func (i Integer) IsEmpty() bool       { return i.Value == nil }
func (Integer) isAnswerBody()         {}

// Checkbox lists the checked boxes. Build it with NewCheckbox.
type Checkbox struct {
	checked []id.CheckboxID
}

// NewCheckbox rejects a box checked twice.
func NewCheckbox(checked []id.CheckboxID) (Checkbox, error) {
	if dup, ok := bound.FirstDuplicate(checked); ok {
		return Checkbox{}, dErrors.New(dErrors.CodeInvalidInput, "checkbox "+dup.String()+" checked twice")
	}
	return Checkbox{checked: append([]id.CheckboxID(nil), checked...)}, nil
}

// MustCheckbox creates a Checkbox, panicking on duplicates.
// Use only in tests or when the value is known to be valid.
func MustCheckbox(checked ...id.CheckboxID) Checkbox {
	c, err := NewCheckbox(checked)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Checkbox) Checked() []id.CheckboxID {
	return append([]id.CheckboxID(nil), c.checked...)
}

func (c Checkbox) Contains(boxID id.CheckboxID) bool {
	for _, b := range c.checked {
		if b == boxID {
			return true
		}
	}
	return false
}

func (Checkbox) Kind() models.ItemKind { return models.KindCheckbox }
func (c Checkbox) IsEmpty() bool       { return len(c.checked) == 0 }
func (Checkbox) isAnswerBody()         {}

// Radio is a single-choice answer; a nil Selected is unanswered.
type Radio struct {
	Selected *id.RadioButtonID
}

func (Radio) Kind() models.ItemKind { return models.KindRadio }
func (r Radio) IsEmpty() bool       { return r.Selected == nil }
func (Radio) isAnswerBody()         {}

// GridRadioRow is the column picked for one row; a nil Column leaves the row blank.
type GridRadioRow struct {
	RowID  id.GridRadioRowID
	Column *id.GridRadioColumnID
}

// GridRadio answers every row of a grid, in the grid's row order.
type GridRadio struct {
	Rows []GridRadioRow
}

func (GridRadio) Kind() models.ItemKind { return models.KindGridRadio }
func (GridRadio) isAnswerBody()         {}

func (g GridRadio) IsEmpty() bool {
	for _, row := range g.Rows {
		if row.Column != nil {
			return false
		}
	}
	return true
}

// HasColumn reports whether any row picked the column.
func (g GridRadio) HasColumn(columnID id.GridRadioColumnID) bool {
	for _, row := range g.Rows {
		if row.Column != nil && *row.Column == columnID {
			return true
		}
	}
	return false
}

// FileRef is a file attached through a file sharing. Type is the media type of the
// shared file as recorded by the file store.
type FileRef struct {
	SharingID id.FileSharingID
	Type      string
}

// File lists the attached files. Build it with NewFile.
type File struct {
	files []FileRef
}

// NewFile rejects a sharing attached twice.
func NewFile(files []FileRef) (File, error) {
	ids := make([]id.FileSharingID, len(files))
	for i, f := range files {
		ids[i] = f.SharingID
	}
	if dup, ok := bound.FirstDuplicate(ids); ok {
		return File{}, dErrors.New(dErrors.CodeInvalidInput, "file sharing "+dup.String()+" attached twice")
	}
	return File{files: append([]FileRef(nil), files...)}, nil
}

// MustFile creates a File, panicking on duplicates.
// Use only in tests or when the value is known to be valid.
func MustFile(files ...FileRef) File {
	f, err := NewFile(files)
	if err != nil {
		panic(err)
	}
	return f
}

func (f File) Files() []FileRef {
	return append([]FileRef(nil), f.files...)
}

// SharingIDs lists the attached sharings in order.
func (f File) SharingIDs() []id.FileSharingID {
	out := make([]id.FileSharingID, len(f.files))
	for i, ref := range f.files {
		out[i] = ref.SharingID
	}
	return out
}

// WithTypes returns a copy whose file types are replaced from the given map. Sharings
// missing from the map keep their current type.
func (f File) WithTypes(types map[id.FileSharingID]string) File {
	out := File{files: make([]FileRef, len(f.files))}
	for i, ref := range f.files {
		if t, ok := types[ref.SharingID]; ok {
			ref.Type = t
		}
		out.files[i] = ref
	}
	return out
}

func (File) Kind() models.ItemKind { return models.KindFile }
func (f File) IsEmpty() bool       { return len(f.files) == 0 }
func (File) isAnswerBody()         {}
