package models

import (
	"time"

	projectModels "festa/internal/project/models"
	"festa/pkg/bound"
	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
)

const (
	MaxFormNameLen        = 64
	MaxFormDescriptionLen = 1024
)

// Period is the half-open window [StartsAt, EndsAt) in which a form accepts answers.
type Period struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

func NewPeriod(startsAt, endsAt time.Time) (Period, error) {
	if !startsAt.Before(endsAt) {
		return Period{}, dErrors.New(dErrors.CodeInvariantViolation, "period must start before it ends")
	}
	return Period{StartsAt: startsAt, EndsAt: endsAt}, nil
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.StartsAt) && t.Before(p.EndsAt)
}

// Form is the aggregate root for a project form.
//
// Invariants:
//   - Name is 1..64 runes, Description at most 1024 runes
//   - Period starts before it ends
//   - Items is non-empty and its conditions only reference earlier items
//
// A form is replaced as a whole through Replace; its fields are not edited one by one.
type Form struct {
	ID          id.FormID
	Name        string
	Description string
	Period      Period
	Items       FormItems
	Condition   FormCondition
	AuthorID    id.UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FormContent is the replaceable part of a form.
type FormContent struct {
	Name        string
	Description string
	Period      Period
	Items       FormItems
	Condition   FormCondition
}

func (c FormContent) validate() error {
	if _, err := bound.NewNonEmptyString(c.Name, MaxFormNameLen); err != nil {
		return invariant(err, "form name")
	}
	if _, err := bound.NewString(c.Description, 0, MaxFormDescriptionLen); err != nil {
		return invariant(err, "form description")
	}
	if !c.Period.StartsAt.Before(c.Period.EndsAt) {
		return dErrors.New(dErrors.CodeInvariantViolation, "period must start before it ends")
	}
	if c.Items.IsZero() {
		return dErrors.New(dErrors.CodeInvariantViolation, "form items required")
	}
	return nil
}

func NewForm(formID id.FormID, authorID id.UserID, content FormContent, now time.Time) (*Form, error) {
	if formID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "form id required")
	}
	if authorID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "form author required")
	}
	if err := content.validate(); err != nil {
		return nil, err
	}
	f := &Form{ID: formID, AuthorID: authorID, CreatedAt: now}
	f.apply(content, now)
	return f, nil
}

// Replace swaps in new content after validating it.
func (f *Form) Replace(content FormContent, now time.Time) error {
	if err := content.validate(); err != nil {
		return err
	}
	f.apply(content, now)
	return nil
}

func (f *Form) apply(c FormContent, now time.Time) {
	f.Name = c.Name
	f.Description = c.Description
	f.Period = c.Period
	f.Items = c.Items
	f.Condition = c.Condition
	f.UpdatedAt = now
}

func (f *Form) Content() FormContent {
	return FormContent{
		Name:        f.Name,
		Description: f.Description,
		Period:      f.Period,
		Items:       f.Items,
		Condition:   f.Condition,
	}
}

func (f *Form) IsOpenAt(now time.Time) bool {
	return f.Period.Contains(now)
}

// HasStarted reports whether the answer period has begun. Started forms may only be
// edited by roles holding UpdateFormsInPeriod.
func (f *Form) HasStarted(now time.Time) bool {
	return !now.Before(f.Period.StartsAt)
}

func (f *Form) IsTargeting(p TargetProject) bool {
	return f.Condition.Check(p)
}

// RegistrationForm is answered while a project is still being registered. It targets
// pending projects by category and attributes only, since they have no id yet that a
// committee member could list.
type RegistrationForm struct {
	ID          id.RegistrationFormID
	Name        string
	Description string
	Items       FormItems
	Query       projectModels.Query
	AuthorID    id.UserID
	CreatedAt   time.Time
}

func NewRegistrationForm(
	formID id.RegistrationFormID,
	authorID id.UserID,
	name, description string,
	items FormItems,
	query projectModels.Query,
	now time.Time,
) (*RegistrationForm, error) {
	if uuidIsNil(formID) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "registration form id required")
	}
	if _, err := bound.NewNonEmptyString(name, MaxFormNameLen); err != nil {
		return nil, invariant(err, "registration form name")
	}
	if _, err := bound.NewString(description, 0, MaxFormDescriptionLen); err != nil {
		return nil, invariant(err, "registration form description")
	}
	if items.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "registration form items required")
	}
	return &RegistrationForm{
		ID:          formID,
		Name:        name,
		Description: description,
		Items:       items,
		Query:       query,
		AuthorID:    authorID,
		CreatedAt:   now,
	}, nil
}

func (f *RegistrationForm) IsTargeting(p projectModels.Facts) bool {
	return f.Query.Check(p)
}

func uuidIsNil[T ~[16]byte](v T) bool {
	return v == T{}
}
