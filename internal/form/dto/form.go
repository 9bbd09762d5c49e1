// Package dto is the wire and file representation of forms, answers and projects.
// Every conversion to a domain value goes through the domain constructors, so a
// decoded document is validated exactly like one built in code.
package dto

import (
	"fmt"
	"time"

	"festa/internal/form/models"
	projectModels "festa/internal/project/models"
	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
)

// Choice is a labelled option: a checkbox, radio button, grid row or grid column.
type Choice[T any] struct {
	ID    T      `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// ItemBody carries the fields of every body kind; Type selects which apply.
type ItemBody struct {
	Type string `json:"type" yaml:"type"`

	IsRequired  bool   `json:"is_required,omitempty" yaml:"is_required,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`

	MinLength            *int `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength            *int `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	AcceptsMultipleLines bool `json:"accepts_multiple_lines,omitempty" yaml:"accepts_multiple_lines,omitempty"`

	Min *int64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *int64 `json:"max,omitempty" yaml:"max,omitempty"`

	Boxes     []Choice[id.CheckboxID] `json:"boxes,omitempty" yaml:"boxes,omitempty"`
	MinChecks *int                    `json:"min_checks,omitempty" yaml:"min_checks,omitempty"`
	MaxChecks *int                    `json:"max_checks,omitempty" yaml:"max_checks,omitempty"`

	Buttons []Choice[id.RadioButtonID] `json:"buttons,omitempty" yaml:"buttons,omitempty"`

	Rows            []Choice[id.GridRadioRowID]    `json:"rows,omitempty" yaml:"rows,omitempty"`
	Columns         []Choice[id.GridRadioColumnID] `json:"columns,omitempty" yaml:"columns,omitempty"`
	ExclusiveColumn bool                           `json:"exclusive_column,omitempty" yaml:"exclusive_column,omitempty"`
	Required        string                         `json:"required,omitempty" yaml:"required,omitempty"`

	AcceptsMultipleFiles bool     `json:"accepts_multiple_files,omitempty" yaml:"accepts_multiple_files,omitempty"`
	AllowedTypes         []string `json:"allowed_types,omitempty" yaml:"allowed_types,omitempty"`
}

// ToModel builds the domain body named by Type.
func (b ItemBody) ToModel() (models.ItemBody, error) {
	switch models.ItemKind(b.Type) {
	case models.KindText:
		return models.NewTextBody(models.TextSpec{
			IsRequired:           b.IsRequired,
			MinLength:            b.MinLength,
			MaxLength:            b.MaxLength,
			AcceptsMultipleLines: b.AcceptsMultipleLines,
			Placeholder:          b.Placeholder,
		})
	case models.KindInteger:
		return models.NewIntegerBody(models.IntegerSpec{
			IsRequired:  b.IsRequired,
			Min:         b.Min,
			Max:         b.Max,
			Placeholder: b.Placeholder,
		})
	case models.KindCheckbox:
		boxes := make([]models.Checkbox, len(b.Boxes))
		for i, c := range b.Boxes {
			boxes[i] = models.Checkbox{ID: c.ID, Label: c.Label}
		}
		return models.NewCheckboxBody(models.CheckboxSpec{Boxes: boxes, MinChecks: b.MinChecks, MaxChecks: b.MaxChecks})
	case models.KindRadio:
		buttons := make([]models.RadioButton, len(b.Buttons))
		for i, c := range b.Buttons {
			buttons[i] = models.RadioButton{ID: c.ID, Label: c.Label}
		}
		return models.NewRadioBody(models.RadioSpec{Buttons: buttons, IsRequired: b.IsRequired})
	case models.KindGridRadio:
		rows := make([]models.GridRadioRow, len(b.Rows))
		for i, c := range b.Rows {
			rows[i] = models.GridRadioRow{ID: c.ID, Label: c.Label}
		}
		cols := make([]models.GridRadioColumn, len(b.Columns))
		for i, c := range b.Columns {
			cols[i] = models.GridRadioColumn{ID: c.ID, Label: c.Label}
		}
		return models.NewGridRadioBody(models.GridRadioSpec{
			Rows:            rows,
			Columns:         cols,
			ExclusiveColumn: b.ExclusiveColumn,
			Required:        models.GridRadioRequired(b.Required),
		})
	case models.KindFile:
		return models.NewFileBody(models.FileSpec{
			IsRequired:           b.IsRequired,
			AcceptsMultipleFiles: b.AcceptsMultipleFiles,
			AllowedTypes:         b.AllowedTypes,
		})
	}
	return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown item type %q", b.Type))
}

// FromItemBody flattens a domain body.
func FromItemBody(body models.ItemBody) ItemBody {
	out := ItemBody{Type: string(body.Kind())}
	switch b := body.(type) {
	case *models.TextBody:
		s := b.Spec()
		out.IsRequired = s.IsRequired
		out.MinLength = s.MinLength
		out.MaxLength = s.MaxLength
		out.AcceptsMultipleLines = s.AcceptsMultipleLines
		out.Placeholder = s.Placeholder
	case *models.IntegerBody:
		s := b.Spec()
		out.IsRequired = s.IsRequired
		out.Min = s.Min
		out.Max = s.Max
		out.Placeholder = s.Placeholder
	case *models.CheckboxBody:
		s := b.Spec()
		for _, c := range s.Boxes {
			out.Boxes = append(out.Boxes, Choice[id.CheckboxID]{ID: c.ID, Label: c.Label})
		}
		out.MinChecks = s.MinChecks
		out.MaxChecks = s.MaxChecks
	case *models.RadioBody:
		s := b.Spec()
		for _, c := range s.Buttons {
			out.Buttons = append(out.Buttons, Choice[id.RadioButtonID]{ID: c.ID, Label: c.Label})
		}
		out.IsRequired = s.IsRequired
	case *models.GridRadioBody:
		s := b.Spec()
		for _, c := range s.Rows {
			out.Rows = append(out.Rows, Choice[id.GridRadioRowID]{ID: c.ID, Label: c.Label})
		}
		for _, c := range s.Columns {
			out.Columns = append(out.Columns, Choice[id.GridRadioColumnID]{ID: c.ID, Label: c.Label})
		}
		out.ExclusiveColumn = s.ExclusiveColumn
		out.Required = string(s.Required)
	case *models.FileBody:
		s := b.Spec()
		out.IsRequired = s.IsRequired
		out.AcceptsMultipleFiles = s.AcceptsMultipleFiles
		out.AllowedTypes = s.AllowedTypes
	}
	return out
}

// Condition is one literal of an item condition. Exactly one of CheckboxID, ButtonID
// and ColumnID is set, matching Type.
type Condition struct {
	Type       string                `json:"type" yaml:"type"`
	ItemID     id.FormItemID         `json:"item_id" yaml:"item_id"`
	CheckboxID *id.CheckboxID        `json:"checkbox_id,omitempty" yaml:"checkbox_id,omitempty"`
	ButtonID   *id.RadioButtonID     `json:"button_id,omitempty" yaml:"button_id,omitempty"`
	ColumnID   *id.GridRadioColumnID `json:"column_id,omitempty" yaml:"column_id,omitempty"`
	Expected   bool                  `json:"expected" yaml:"expected"`
}

func (c Condition) ToModel() (models.ItemCondition, error) {
	switch models.ItemKind(c.Type) {
	case models.KindCheckbox:
		if c.CheckboxID != nil {
			return models.CheckboxCondition{ItemID: c.ItemID, CheckboxID: *c.CheckboxID, Expected: c.Expected}, nil
		}
	case models.KindRadio:
		if c.ButtonID != nil {
			return models.RadioCondition{ItemID: c.ItemID, ButtonID: *c.ButtonID, Expected: c.Expected}, nil
		}
	case models.KindGridRadio:
		if c.ColumnID != nil {
			return models.GridRadioCondition{ItemID: c.ItemID, ColumnID: *c.ColumnID, Expected: c.Expected}, nil
		}
	default:
		return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown condition type %q", c.Type))
	}
	return nil, dErrors.New(dErrors.CodeInvalidInput, c.Type+" condition is missing its choice id")
}

func FromCondition(c models.ItemCondition) Condition {
	out := Condition{Type: string(c.TargetKind()), ItemID: c.TargetItemID()}
	switch lit := c.(type) {
	case models.CheckboxCondition:
		out.CheckboxID = &lit.CheckboxID
		out.Expected = lit.Expected
	case models.RadioCondition:
		out.ButtonID = &lit.ButtonID
		out.Expected = lit.Expected
	case models.GridRadioCondition:
		out.ColumnID = &lit.ColumnID
		out.Expected = lit.Expected
	}
	return out
}

// FormItem is a form item; Conditions is an OR of ANDs and absent when the item is
// unconditional.
type FormItem struct {
	ID          id.FormItemID `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Conditions  [][]Condition `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Body        ItemBody      `json:"body" yaml:"body"`
}

func (i FormItem) ToModel() (*models.FormItem, error) {
	var conds *models.ItemConditions
	if len(i.Conditions) > 0 {
		dnf := make([][]models.ItemCondition, len(i.Conditions))
		for ci, conj := range i.Conditions {
			dnf[ci] = make([]models.ItemCondition, len(conj))
			for li, lit := range conj {
				m, err := lit.ToModel()
				if err != nil {
					return nil, err
				}
				dnf[ci][li] = m
			}
		}
		var err error
		if conds, err = models.NewItemConditions(dnf); err != nil {
			return nil, err
		}
	}
	body, err := i.Body.ToModel()
	if err != nil {
		return nil, err
	}
	return models.NewFormItem(i.ID, i.Name, i.Description, conds, body)
}

func FromFormItem(item *models.FormItem) FormItem {
	out := FormItem{
		ID:          item.ID(),
		Name:        item.Name(),
		Description: item.Description(),
		Body:        FromItemBody(item.Body()),
	}
	if item.HasConditions() {
		for _, conj := range item.Conditions().Conjunctions() {
			lits := make([]Condition, len(conj))
			for i, lit := range conj {
				lits[i] = FromCondition(lit)
			}
			out.Conditions = append(out.Conditions, lits)
		}
	}
	return out
}

// ItemsToModel converts and validates a whole item list.
func ItemsToModel(items []FormItem) (models.FormItems, error) {
	out := make([]*models.FormItem, len(items))
	for i, item := range items {
		m, err := item.ToModel()
		if err != nil {
			return models.FormItems{}, dErrors.Wrap(err, dErrors.CodeOf(err), fmt.Sprintf("item %d", i))
		}
		out[i] = m
	}
	return models.NewFormItems(out)
}

func FromFormItems(items models.FormItems) []FormItem {
	out := make([]FormItem, items.Len())
	for i, item := range items.Items() {
		out[i] = FromFormItem(item)
	}
	return out
}

// FormCondition selects the projects a form applies to.
type FormCondition struct {
	Query    Query          `json:"query" yaml:"query"`
	Includes []id.ProjectID `json:"includes,omitempty" yaml:"includes,omitempty"`
	Excludes []id.ProjectID `json:"excludes,omitempty" yaml:"excludes,omitempty"`
}

func (c FormCondition) ToModel() (models.FormCondition, error) {
	q, err := c.Query.ToModel()
	if err != nil {
		return models.FormCondition{}, err
	}
	includes, err := models.NewProjectIDSet(c.Includes)
	if err != nil {
		return models.FormCondition{}, err
	}
	excludes, err := models.NewProjectIDSet(c.Excludes)
	if err != nil {
		return models.FormCondition{}, err
	}
	return models.FormCondition{Query: q, Includes: includes, Excludes: excludes}, nil
}

func FromFormCondition(c models.FormCondition) FormCondition {
	return FormCondition{
		Query:    FromQuery(c.Query),
		Includes: c.Includes.IDs(),
		Excludes: c.Excludes.IDs(),
	}
}

// FormInput is the authored part of a form, as submitted when creating one.
type FormInput struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	StartsAt    time.Time     `json:"starts_at" yaml:"starts_at"`
	EndsAt      time.Time     `json:"ends_at" yaml:"ends_at"`
	Items       []FormItem    `json:"items" yaml:"items"`
	Condition   FormCondition `json:"condition" yaml:"condition"`
}

func (in FormInput) ToContent() (models.FormContent, error) {
	period, err := models.NewPeriod(in.StartsAt, in.EndsAt)
	if err != nil {
		return models.FormContent{}, err
	}
	items, err := ItemsToModel(in.Items)
	if err != nil {
		return models.FormContent{}, err
	}
	cond, err := in.Condition.ToModel()
	if err != nil {
		return models.FormContent{}, err
	}
	return models.FormContent{
		Name:        in.Name,
		Description: in.Description,
		Period:      period,
		Items:       items,
		Condition:   cond,
	}, nil
}

// Form is a stored or exported form.
type Form struct {
	ID        id.FormID `json:"id" yaml:"id"`
	AuthorID  id.UserID `json:"author_id" yaml:"author_id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
	FormInput `yaml:",inline"`
}

func (f Form) ToModel() (*models.Form, error) {
	content, err := f.ToContent()
	if err != nil {
		return nil, err
	}
	form, err := models.NewForm(f.ID, f.AuthorID, content, f.CreatedAt)
	if err != nil {
		return nil, err
	}
	form.UpdatedAt = f.UpdatedAt
	return form, nil
}

func FromForm(f *models.Form) Form {
	return Form{
		ID:        f.ID,
		AuthorID:  f.AuthorID,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
		FormInput: FormInput{
			Name:        f.Name,
			Description: f.Description,
			StartsAt:    f.Period.StartsAt,
			EndsAt:      f.Period.EndsAt,
			Items:       FromFormItems(f.Items),
			Condition:   FromFormCondition(f.Condition),
		},
	}
}

// RegistrationForm is a stored or exported registration form.
type RegistrationForm struct {
	ID          id.RegistrationFormID `json:"id" yaml:"id"`
	AuthorID    id.UserID             `json:"author_id" yaml:"author_id"`
	Name        string                `json:"name" yaml:"name"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Items       []FormItem            `json:"items" yaml:"items"`
	Query       Query                 `json:"query" yaml:"query"`
	CreatedAt   time.Time             `json:"created_at" yaml:"created_at"`
}

func (f RegistrationForm) ToModel() (*models.RegistrationForm, error) {
	items, err := ItemsToModel(f.Items)
	if err != nil {
		return nil, err
	}
	q, err := f.Query.ToModel()
	if err != nil {
		return nil, err
	}
	return models.NewRegistrationForm(f.ID, f.AuthorID, f.Name, f.Description, items, q, f.CreatedAt)
}

func FromRegistrationForm(f *models.RegistrationForm) RegistrationForm {
	return RegistrationForm{
		ID:          f.ID,
		AuthorID:    f.AuthorID,
		Name:        f.Name,
		Description: f.Description,
		Items:       FromFormItems(f.Items),
		Query:       FromQuery(f.Query),
		CreatedAt:   f.CreatedAt,
	}
}

// Conjunction is one term of a project query.
type Conjunction struct {
	Category   *string  `json:"category,omitempty" yaml:"category,omitempty"`
	Attributes []string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Query is an OR of Conjunctions over project category and attributes.
type Query []Conjunction

func (q Query) ToModel() (projectModels.Query, error) {
	conjs := make([]projectModels.Conjunction, len(q))
	for i, c := range q {
		if c.Category != nil {
			cat, err := projectModels.ParseCategory(*c.Category)
			if err != nil {
				return projectModels.Query{}, err
			}
			conjs[i].Category = &cat
		}
		attrs, err := parseAttributes(c.Attributes)
		if err != nil {
			return projectModels.Query{}, err
		}
		conjs[i].Attributes = attrs
	}
	return projectModels.NewQuery(conjs)
}

func FromQuery(q projectModels.Query) Query {
	out := Query{}
	for _, c := range q.Conjunctions() {
		var conj Conjunction
		if c.Category != nil {
			s := c.Category.String()
			conj.Category = &s
		}
		conj.Attributes = attributeNames(c.Attributes)
		out = append(out, conj)
	}
	return out
}

func parseAttributes(names []string) (projectModels.AttributeSet, error) {
	attrs := make([]projectModels.Attribute, len(names))
	for i, name := range names {
		a, err := projectModels.ParseAttribute(name)
		if err != nil {
			return 0, err
		}
		attrs[i] = a
	}
	return projectModels.NewAttributeSet(attrs...)
}

func attributeNames(set projectModels.AttributeSet) []string {
	var out []string
	for _, a := range set.Attributes() {
		out = append(out, a.String())
	}
	return out
}
