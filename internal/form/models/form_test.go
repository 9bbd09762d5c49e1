package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	projectModels "festa/internal/project/models"
	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
)

type FormSuite struct {
	suite.Suite
	now     time.Time
	author  id.UserID
	content FormContent
}

func TestFormSuite(t *testing.T) {
	suite.Run(t, new(FormSuite))
}

func (s *FormSuite) SetupTest() {
	s.now = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	s.author = id.UserID(uuid.New())
	period, err := NewPeriod(s.now, s.now.Add(72*time.Hour))
	s.Require().NoError(err)
	s.content = FormContent{
		Name:   "企画調査",
		Period: period,
		Items:  MustFormItems(mustItem(newItemID(), nil, radioBody(true, newButtonID()))),
		Condition: FormCondition{
			Query: projectModels.AlwaysQuery(),
		},
	}
}

func (s *FormSuite) TestNewForm() {
	s.Run("valid form", func() {
		form, err := NewForm(id.FormID(uuid.New()), s.author, s.content, s.now)
		s.Require().NoError(err)
		s.Equal(s.now, form.CreatedAt)
		s.Equal(s.content.Name, form.Content().Name)
		s.True(form.IsTargeting(targetProject{id: newProjectID(), category: projectModels.CategoryFood}))
	})

	s.Run("rejects invalid content", func() {
		cases := map[string]func(c *FormContent){
			"empty name":    func(c *FormContent) { c.Name = "" },
			"inverted time": func(c *FormContent) { c.Period = Period{StartsAt: s.now, EndsAt: s.now} },
			"no items":      func(c *FormContent) { c.Items = FormItems{} },
		}
		for name, mutate := range cases {
			content := s.content
			mutate(&content)
			_, err := NewForm(id.FormID(uuid.New()), s.author, content, s.now)
			s.Require().Error(err, name)
			s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation), name)
		}
	})

	s.Run("rejects nil ids", func() {
		_, err := NewForm(id.FormID{}, s.author, s.content, s.now)
		s.Error(err)
		_, err = NewForm(id.FormID(uuid.New()), id.UserID{}, s.content, s.now)
		s.Error(err)
	})
}

func (s *FormSuite) TestPeriod() {
	_, err := NewPeriod(s.now, s.now.Add(-time.Second))
	s.Error(err)

	form, err := NewForm(id.FormID(uuid.New()), s.author, s.content, s.now)
	s.Require().NoError(err)

	s.False(form.IsOpenAt(s.now.Add(-time.Nanosecond)))
	s.True(form.IsOpenAt(s.now))
	s.True(form.IsOpenAt(s.now.Add(71 * time.Hour)))
	s.False(form.IsOpenAt(s.now.Add(72*time.Hour)), "end is exclusive")

	s.False(form.HasStarted(s.now.Add(-time.Minute)))
	s.True(form.HasStarted(s.now))
}

func (s *FormSuite) TestReplace() {
	form, err := NewForm(id.FormID(uuid.New()), s.author, s.content, s.now)
	s.Require().NoError(err)

	later := s.now.Add(time.Hour)
	bad := s.content
	bad.Name = ""
	s.Require().Error(form.Replace(bad, later))
	s.Equal(s.content.Name, form.Name, "failed replace leaves the form untouched")
	s.Equal(s.now, form.UpdatedAt)

	next := s.content
	next.Name = "企画調査（改訂）"
	s.Require().NoError(form.Replace(next, later))
	s.Equal(next.Name, form.Name)
	s.Equal(later, form.UpdatedAt)
	s.Equal(s.now, form.CreatedAt)
}

func (s *FormSuite) TestRegistrationForm() {
	stage := projectModels.CategoryStage
	query := projectModels.MustQuery(projectModels.Conjunction{Category: &stage})

	form, err := NewRegistrationForm(id.RegistrationFormID(uuid.New()), s.author, "ステージ企画登録", "", s.content.Items, query, s.now)
	s.Require().NoError(err)

	s.True(form.IsTargeting(targetProject{category: projectModels.CategoryStage}))
	s.False(form.IsTargeting(targetProject{category: projectModels.CategoryGeneral}))

	_, err = NewRegistrationForm(id.RegistrationFormID(uuid.New()), s.author, "", "", s.content.Items, query, s.now)
	s.Error(err)
	_, err = NewRegistrationForm(id.RegistrationFormID{}, s.author, "n", "", s.content.Items, query, s.now)
	s.Error(err)
}
