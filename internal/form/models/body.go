package models

import (
	"fmt"
	"mime"
	"strings"

	"festa/pkg/bound"
	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
)

// Limits shared by item bodies.
const (
	MaxTextLength      = 65536
	MaxPlaceholderLen  = 1024
	MaxChoiceLabelLen  = 64
	MaxChoices         = 32
	MaxAllowedFileType = 32
)

// ItemKind names the body variant of a form item and of an answer to it.
type ItemKind string

const (
	KindText      ItemKind = "text"
	KindInteger   ItemKind = "integer"
	KindCheckbox  ItemKind = "checkbox"
	KindRadio     ItemKind = "radio"
	KindGridRadio ItemKind = "grid_radio"
	KindFile      ItemKind = "file"
)

// ItemBody is the type-specific definition of a form item. The set of
// implementations is closed.
type ItemBody interface {
	Kind() ItemKind
	// IsRequired reports whether an answer must be given when the item is shown.
	IsRequired() bool
	// AcceptsAnswerWhenHidden reports whether an answer may still be supplied while the
	// item's conditions are unmet.
	AcceptsAnswerWhenHidden() bool
	isItemBody()
}

func invariant(err error, what string) error {
	return dErrors.Wrap(err, dErrors.CodeInvariantViolation, "invalid "+what)
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// ---------------------------------------------------------------------------
// Text
// ---------------------------------------------------------------------------

// TextSpec describes a free-text item.
type TextSpec struct {
	IsRequired           bool
	MinLength            *int
	MaxLength            *int
	AcceptsMultipleLines bool
	Placeholder          string
}

// TextBody is a validated TextSpec.
type TextBody struct {
	spec TextSpec
}

// NewTextBody validates 0 <= min <= max <= MaxTextLength.
func NewTextBody(spec TextSpec) (*TextBody, error) {
	for _, p := range []*int{spec.MinLength, spec.MaxLength} {
		if p != nil {
			if _, err := bound.NewInt(int64(*p), 0, MaxTextLength); err != nil {
				return nil, invariant(err, "text length limit")
			}
		}
	}
	if spec.MinLength != nil && spec.MaxLength != nil && *spec.MinLength > *spec.MaxLength {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "text min_length exceeds max_length")
	}
	if _, err := bound.NewString(spec.Placeholder, 0, MaxPlaceholderLen); err != nil {
		return nil, invariant(err, "placeholder")
	}
	spec.MinLength = copyInt(spec.MinLength)
	spec.MaxLength = copyInt(spec.MaxLength)
	return &TextBody{spec: spec}, nil
}

// Spec decomposes the body back into its fields.
func (b *TextBody) Spec() TextSpec {
	s := b.spec
	s.MinLength = copyInt(s.MinLength)
	s.MaxLength = copyInt(s.MaxLength)
	return s
}

func (b *TextBody) Kind() ItemKind                { return KindText }
func (b *TextBody) IsRequired() bool              { return b.spec.IsRequired }
func (b *TextBody) AcceptsAnswerWhenHidden() bool { return true }
func (b *TextBody) isItemBody()                   {}

// ---------------------------------------------------------------------------
// Integer
// ---------------------------------------------------------------------------

// IntegerSpec describes a numeric item.
type IntegerSpec struct {
	IsRequired  bool
	Min         *int64
	Max         *int64
	Placeholder string
}

// IntegerBody is a validated IntegerSpec.
type IntegerBody struct {
	spec IntegerSpec
}

// NewIntegerBody validates min <= max.
func NewIntegerBody(spec IntegerSpec) (*IntegerBody, error) {
	if spec.Min != nil && spec.Max != nil && *spec.Min > *spec.Max {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "integer min exceeds max")
	}
	if _, err := bound.NewString(spec.Placeholder, 0, MaxPlaceholderLen); err != nil {
		return nil, invariant(err, "placeholder")
	}
	spec.Min = copyInt64(spec.Min)
	spec.Max = copyInt64(spec.Max)
	return &IntegerBody{spec: spec}, nil
}

func (b *IntegerBody) Spec() IntegerSpec {
	s := b.spec
	s.Min = copyInt64(s.Min)
	s.Max = copyInt64(s.Max)
	return s
}

func (b *IntegerBody) Kind() ItemKind                { return KindInteger }
func (b *IntegerBody) IsRequired() bool              { return b.spec.IsRequired }
func (b *IntegerBody) AcceptsAnswerWhenHidden() bool { return true }
func (b *IntegerBody) isItemBody()                   {}

// ---------------------------------------------------------------------------
// Checkbox
// ---------------------------------------------------------------------------

// Checkbox is one box of a checkbox item.
type Checkbox struct {
	ID    id.CheckboxID
	Label string
}

// CheckboxSpec describes a multiple-choice item.
type CheckboxSpec struct {
	Boxes     []Checkbox
	MinChecks *int
	MaxChecks *int
}

// CheckboxBody is a validated CheckboxSpec.
type CheckboxBody struct {
	spec CheckboxSpec
}

// NewCheckboxBody validates the box list (1..MaxChoices, unique ids, labelled) and
// that each check limit is below the number of boxes with min <= max.
func NewCheckboxBody(spec CheckboxSpec) (*CheckboxBody, error) {
	if err := bound.CheckLen(len(spec.Boxes), 1, MaxChoices, "checkboxes"); err != nil {
		return nil, invariant(err, "checkboxes")
	}
	ids := make([]id.CheckboxID, len(spec.Boxes))
	for i, box := range spec.Boxes {
		if err := checkLabel(box.Label); err != nil {
			return nil, err
		}
		ids[i] = box.ID
	}
	if dup, ok := bound.FirstDuplicate(ids); ok {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "duplicated checkbox id "+dup.String())
	}
	for _, limit := range []*int{spec.MinChecks, spec.MaxChecks} {
		if limit != nil && (*limit < 0 || *limit >= len(spec.Boxes)) {
			return nil, dErrors.New(dErrors.CodeInvariantViolation,
				fmt.Sprintf("check limit %d must be in [0, %d)", *limit, len(spec.Boxes)))
		}
	}
	if spec.MinChecks != nil && spec.MaxChecks != nil && *spec.MinChecks > *spec.MaxChecks {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "min_checks exceeds max_checks")
	}
	spec.Boxes = append([]Checkbox(nil), spec.Boxes...)
	spec.MinChecks = copyInt(spec.MinChecks)
	spec.MaxChecks = copyInt(spec.MaxChecks)
	return &CheckboxBody{spec: spec}, nil
}

func (b *CheckboxBody) Spec() CheckboxSpec {
	s := b.spec
	s.Boxes = append([]Checkbox(nil), s.Boxes...)
	s.MinChecks = copyInt(s.MinChecks)
	s.MaxChecks = copyInt(s.MaxChecks)
	return s
}

// HasBox reports whether the id names one of the boxes.
func (b *CheckboxBody) HasBox(boxID id.CheckboxID) bool {
	for _, box := range b.spec.Boxes {
		if box.ID == boxID {
			return true
		}
	}
	return false
}

func (b *CheckboxBody) Kind() ItemKind { return KindCheckbox }

// IsRequired is true when at least one box has to be checked.
func (b *CheckboxBody) IsRequired() bool {
	return b.spec.MinChecks != nil && *b.spec.MinChecks > 0
}

func (b *CheckboxBody) AcceptsAnswerWhenHidden() bool { return true }
func (b *CheckboxBody) isItemBody()                   {}

// ---------------------------------------------------------------------------
// Radio
// ---------------------------------------------------------------------------

// RadioButton is one option of a radio item.
type RadioButton struct {
	ID    id.RadioButtonID
	Label string
}

// RadioSpec describes a single-choice item.
type RadioSpec struct {
	Buttons    []RadioButton
	IsRequired bool
}

// RadioBody is a validated RadioSpec.
type RadioBody struct {
	spec RadioSpec
}

func NewRadioBody(spec RadioSpec) (*RadioBody, error) {
	if err := bound.CheckLen(len(spec.Buttons), 1, MaxChoices, "radio buttons"); err != nil {
		return nil, invariant(err, "radio buttons")
	}
	ids := make([]id.RadioButtonID, len(spec.Buttons))
	for i, button := range spec.Buttons {
		if err := checkLabel(button.Label); err != nil {
			return nil, err
		}
		ids[i] = button.ID
	}
	if dup, ok := bound.FirstDuplicate(ids); ok {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "duplicated radio button id "+dup.String())
	}
	spec.Buttons = append([]RadioButton(nil), spec.Buttons...)
	return &RadioBody{spec: spec}, nil
}

func (b *RadioBody) Spec() RadioSpec {
	s := b.spec
	s.Buttons = append([]RadioButton(nil), s.Buttons...)
	return s
}

func (b *RadioBody) HasButton(buttonID id.RadioButtonID) bool {
	for _, button := range b.spec.Buttons {
		if button.ID == buttonID {
			return true
		}
	}
	return false
}

func (b *RadioBody) Kind() ItemKind                { return KindRadio }
func (b *RadioBody) IsRequired() bool              { return b.spec.IsRequired }
func (b *RadioBody) AcceptsAnswerWhenHidden() bool { return true }
func (b *RadioBody) isItemBody()                   {}

// ---------------------------------------------------------------------------
// Grid radio
// ---------------------------------------------------------------------------

// GridRadioRow is one question row of a grid radio item.
type GridRadioRow struct {
	ID    id.GridRadioRowID
	Label string
}

// GridRadioColumn is one choice column of a grid radio item.
type GridRadioColumn struct {
	ID    id.GridRadioColumnID
	Label string
}

// GridRadioRequired states which rows must be answered.
type GridRadioRequired string

const (
	GridRadioRequiredAll  GridRadioRequired = "all"
	GridRadioRequiredNone GridRadioRequired = "none"
)

func (r GridRadioRequired) IsValid() bool {
	return r == GridRadioRequiredAll || r == GridRadioRequiredNone
}

// GridRadioSpec describes a matrix of radio choices.
type GridRadioSpec struct {
	Rows            []GridRadioRow
	Columns         []GridRadioColumn
	ExclusiveColumn bool
	Required        GridRadioRequired
}

// GridRadioBody is a validated GridRadioSpec.
type GridRadioBody struct {
	spec GridRadioSpec
}

// NewGridRadioBody validates rows and columns (1..MaxChoices each, unique ids). An
// exclusive grid that requires every row needs at least as many columns as rows,
// otherwise no answer could ever be accepted.
func NewGridRadioBody(spec GridRadioSpec) (*GridRadioBody, error) {
	if err := bound.CheckLen(len(spec.Rows), 1, MaxChoices, "grid radio rows"); err != nil {
		return nil, invariant(err, "grid radio rows")
	}
	if err := bound.CheckLen(len(spec.Columns), 1, MaxChoices, "grid radio columns"); err != nil {
		return nil, invariant(err, "grid radio columns")
	}
	if !spec.Required.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "invalid grid radio required: "+string(spec.Required))
	}
	rowIDs := make([]id.GridRadioRowID, len(spec.Rows))
	for i, row := range spec.Rows {
		if err := checkLabel(row.Label); err != nil {
			return nil, err
		}
		rowIDs[i] = row.ID
	}
	if dup, ok := bound.FirstDuplicate(rowIDs); ok {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "duplicated grid radio row id "+dup.String())
	}
	colIDs := make([]id.GridRadioColumnID, len(spec.Columns))
	for i, col := range spec.Columns {
		if err := checkLabel(col.Label); err != nil {
			return nil, err
		}
		colIDs[i] = col.ID
	}
	if dup, ok := bound.FirstDuplicate(colIDs); ok {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "duplicated grid radio column id "+dup.String())
	}
	if spec.ExclusiveColumn && spec.Required == GridRadioRequiredAll && len(spec.Rows) > len(spec.Columns) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "exclusive grid radio requiring all rows needs at least as many columns as rows")
	}
	spec.Rows = append([]GridRadioRow(nil), spec.Rows...)
	spec.Columns = append([]GridRadioColumn(nil), spec.Columns...)
	return &GridRadioBody{spec: spec}, nil
}

func (b *GridRadioBody) Spec() GridRadioSpec {
	s := b.spec
	s.Rows = append([]GridRadioRow(nil), s.Rows...)
	s.Columns = append([]GridRadioColumn(nil), s.Columns...)
	return s
}

// RowIDs lists the row ids in display order.
func (b *GridRadioBody) RowIDs() []id.GridRadioRowID {
	out := make([]id.GridRadioRowID, len(b.spec.Rows))
	for i, row := range b.spec.Rows {
		out[i] = row.ID
	}
	return out
}

func (b *GridRadioBody) HasColumn(columnID id.GridRadioColumnID) bool {
	for _, col := range b.spec.Columns {
		if col.ID == columnID {
			return true
		}
	}
	return false
}

func (b *GridRadioBody) ExclusiveColumn() bool { return b.spec.ExclusiveColumn }

func (b *GridRadioBody) Kind() ItemKind                { return KindGridRadio }
func (b *GridRadioBody) IsRequired() bool              { return b.spec.Required == GridRadioRequiredAll }
func (b *GridRadioBody) AcceptsAnswerWhenHidden() bool { return true }
func (b *GridRadioBody) isItemBody()                   {}

// ---------------------------------------------------------------------------
// File
// ---------------------------------------------------------------------------

// FileSpec describes a file upload item. A nil AllowedTypes accepts any type.
type FileSpec struct {
	IsRequired           bool
	AcceptsMultipleFiles bool
	AllowedTypes         []string
}

// FileBody is a validated FileSpec.
type FileBody struct {
	spec FileSpec
	// allowed holds AllowedTypes lower-cased and without parameters, in the same order.
	allowed []string
}

// NewFileBody validates the allowed media types. Types are compared case-insensitively
// and without parameters; a "*" subtype ("image/*") accepts any subtype. Spec returns
// the entries as given.
func NewFileBody(spec FileSpec) (*FileBody, error) {
	var allowed []string
	if spec.AllowedTypes != nil {
		if err := bound.CheckLen(len(spec.AllowedTypes), 1, MaxAllowedFileType, "allowed file types"); err != nil {
			return nil, invariant(err, "allowed file types")
		}
		allowed = make([]string, len(spec.AllowedTypes))
		for i, t := range spec.AllowedTypes {
			mt, err := normaliseMediaType(t)
			if err != nil {
				return nil, invariant(err, "allowed file type")
			}
			allowed[i] = mt
		}
		if dup, ok := bound.FirstDuplicate(allowed); ok {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "duplicated allowed file type "+dup)
		}
		spec.AllowedTypes = append([]string(nil), spec.AllowedTypes...)
	}
	return &FileBody{spec: spec, allowed: allowed}, nil
}

func (b *FileBody) Spec() FileSpec {
	s := b.spec
	if s.AllowedTypes != nil {
		s.AllowedTypes = append([]string(nil), s.AllowedTypes...)
	}
	return s
}

// AcceptsMultipleFiles reports whether more than one file may be attached.
func (b *FileBody) AcceptsMultipleFiles() bool { return b.spec.AcceptsMultipleFiles }

// AllowsType reports whether a file of the given media type may be attached.
func (b *FileBody) AllowsType(mediaType string) bool {
	if b.spec.AllowedTypes == nil {
		return true
	}
	mt, err := normaliseMediaType(mediaType)
	if err != nil {
		return false
	}
	for _, allowed := range b.allowed {
		if allowed == mt {
			return true
		}
		if prefix, ok := strings.CutSuffix(allowed, "/*"); ok && strings.HasPrefix(mt, prefix+"/") {
			return true
		}
	}
	return false
}

func (b *FileBody) Kind() ItemKind   { return KindFile }
func (b *FileBody) IsRequired() bool { return b.spec.IsRequired }

// AcceptsAnswerWhenHidden is false: files attached to a hidden item would still be
// shared with the committee.
func (b *FileBody) AcceptsAnswerWhenHidden() bool { return false }
func (b *FileBody) isItemBody()                   {}

func normaliseMediaType(s string) (string, error) {
	mt, _, err := mime.ParseMediaType(s)
	if err != nil {
		return "", err
	}
	if !strings.Contains(mt, "/") {
		return "", fmt.Errorf("media type %q has no subtype", s)
	}
	return mt, nil
}

func checkLabel(label string) error {
	if _, err := bound.NewNonEmptyString(label, MaxChoiceLabelLen); err != nil {
		return invariant(err, "choice label")
	}
	return nil
}
