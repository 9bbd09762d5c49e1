// Package formtest builds small valid forms and answers for tests.
package formtest

import (
	"time"

	"github.com/google/uuid"

	"festa/internal/form/answer"
	"festa/internal/form/models"
	projectModels "festa/internal/project/models"
	id "festa/pkg/domain"
)

// Fixture is a two-item form: a required yes/no radio, then a checkbox of up to two
// boxes that only applies when the radio is "yes".
type Fixture struct {
	Form      *models.Form
	RadioItem id.FormItemID
	CheckItem id.FormItemID
	Yes, No   id.RadioButtonID
	Boxes     [3]id.CheckboxID
}

func newIDs() Fixture {
	return Fixture{
		RadioItem: id.FormItemID(uuid.New()),
		CheckItem: id.FormItemID(uuid.New()),
		Yes:       id.RadioButtonID(uuid.New()),
		No:        id.RadioButtonID(uuid.New()),
		Boxes: [3]id.CheckboxID{
			id.CheckboxID(uuid.New()),
			id.CheckboxID(uuid.New()),
			id.CheckboxID(uuid.New()),
		},
	}
}

func (f *Fixture) items() models.FormItems {
	radio := must(models.NewRadioBody(models.RadioSpec{
		IsRequired: true,
		Buttons: []models.RadioButton{
			{ID: f.Yes, Label: "yes"},
			{ID: f.No, Label: "no"},
		},
	}))
	maxChecks := 2
	boxes := make([]models.Checkbox, len(f.Boxes))
	for i, b := range f.Boxes {
		boxes[i] = models.Checkbox{ID: b, Label: string(rune('a' + i))}
	}
	check := must(models.NewCheckboxBody(models.CheckboxSpec{Boxes: boxes, MaxChecks: &maxChecks}))
	cond := models.MustItemConditions([]models.ItemCondition{
		models.RadioCondition{ItemID: f.RadioItem, ButtonID: f.Yes, Expected: true},
	})
	return models.MustFormItems(
		must(models.NewFormItem(f.RadioItem, "uses fire", "", nil, radio)),
		must(models.NewFormItem(f.CheckItem, "equipment", "", cond, check)),
	)
}

// NewForm returns a fixture form open from an hour before now until a day after.
func NewForm(now time.Time, condition models.FormCondition) *Fixture {
	f := newIDs()
	f.Form = must(models.NewForm(id.FormID(uuid.New()), id.UserID(uuid.New()), models.FormContent{
		Name:      "fire safety",
		Period:    must(models.NewPeriod(now.Add(-time.Hour), now.Add(24*time.Hour))),
		Items:     f.items(),
		Condition: condition,
	}, now.Add(-2*time.Hour)))
	return &f
}

// RegistrationFixture is Fixture's items on a registration form.
type RegistrationFixture struct {
	Fixture
	RegistrationForm *models.RegistrationForm
}

func NewRegistrationForm(now time.Time, query projectModels.Query) *RegistrationFixture {
	f := newIDs()
	rf := must(models.NewRegistrationForm(
		id.RegistrationFormID(uuid.New()), id.UserID(uuid.New()),
		"registration", "", f.items(), query, now,
	))
	return &RegistrationFixture{Fixture: f, RegistrationForm: rf}
}

// Answer answers yes with the given boxes checked, or no when yes is false.
func (f *Fixture) Answer(yes bool, boxes ...int) answer.Answer {
	button := f.No
	if yes {
		button = f.Yes
	}
	checked := make([]id.CheckboxID, len(boxes))
	for i, b := range boxes {
		checked[i] = f.Boxes[b]
	}
	return answer.Answer{
		{ItemID: f.RadioItem, Body: answer.Radio{Selected: &button}},
		{ItemID: f.CheckItem, Body: answer.MustCheckbox(checked...)},
	}
}

// Everyone targets every project.
func Everyone() models.FormCondition {
	return models.FormCondition{Query: projectModels.AlwaysQuery()}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
