package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"festa/internal/form/answer"
	"festa/internal/form/formtest"
	projectModels "festa/internal/project/models"
	id "festa/pkg/domain"
	"festa/pkg/platform/sentinel"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
	now   time.Time
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
}

func (s *InMemorySuite) TestForms() {
	s.Run("creates, finds and lists in creation order", func() {
		first := formtest.NewForm(s.now, formtest.Everyone()).Form
		second := formtest.NewForm(s.now.Add(time.Hour), formtest.Everyone()).Form
		s.Require().NoError(s.store.CreateForm(s.ctx, second))
		s.Require().NoError(s.store.CreateForm(s.ctx, first))

		found, err := s.store.FindForm(s.ctx, first.ID)
		s.Require().NoError(err)
		s.Same(first, found)

		all, err := s.store.ListForms(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 2)
		s.Equal(first.ID, all[0].ID)
	})

	s.Run("rejects duplicate ids", func() {
		f := formtest.NewForm(s.now, formtest.Everyone()).Form
		s.Require().NoError(s.store.CreateForm(s.ctx, f))
		s.ErrorIs(s.store.CreateForm(s.ctx, f), sentinel.ErrConflict)
	})

	s.Run("update requires an existing form", func() {
		f := formtest.NewForm(s.now, formtest.Everyone()).Form
		s.ErrorIs(s.store.UpdateForm(s.ctx, f), sentinel.ErrNotFound)
	})

	s.Run("unknown form is not found", func() {
		_, err := s.store.FindForm(s.ctx, id.FormID(uuid.New()))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemorySuite) TestFormAnswers() {
	fx := formtest.NewForm(s.now, formtest.Everyone())
	projectID := id.ProjectID(uuid.New())

	first := &answer.FormAnswer{
		ID:        id.FormAnswerID(uuid.New()),
		FormID:    fx.Form.ID,
		ProjectID: projectID,
		AuthorID:  id.UserID(uuid.New()),
		Items:     fx.Answer(true, 0),
		CreatedAt: s.now,
		UpdatedAt: s.now,
	}
	s.Require().NoError(s.store.SaveFormAnswer(s.ctx, first))

	s.Run("a second save replaces items but keeps identity", func() {
		later := s.now.Add(time.Minute)
		second := &answer.FormAnswer{
			ID:        id.FormAnswerID(uuid.New()),
			FormID:    fx.Form.ID,
			ProjectID: projectID,
			AuthorID:  id.UserID(uuid.New()),
			Items:     fx.Answer(false),
			CreatedAt: later,
			UpdatedAt: later,
		}
		s.Require().NoError(s.store.SaveFormAnswer(s.ctx, second))

		got, err := s.store.FindFormAnswer(s.ctx, fx.Form.ID, projectID)
		s.Require().NoError(err)
		s.Equal(first.ID, got.ID)
		s.Equal(s.now, got.CreatedAt)
		s.Equal(later, got.UpdatedAt)
		s.Equal(second.AuthorID, got.AuthorID)
		s.Equal(fx.Answer(false), got.Items)
	})

	s.Run("answers are per project", func() {
		_, err := s.store.FindFormAnswer(s.ctx, fx.Form.ID, id.ProjectID(uuid.New()))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemorySuite) TestRegistrationForms() {
	rf := formtest.NewRegistrationForm(s.now, projectModels.AlwaysQuery())
	s.Require().NoError(s.store.CreateRegistrationForm(s.ctx, rf.RegistrationForm))
	s.ErrorIs(s.store.CreateRegistrationForm(s.ctx, rf.RegistrationForm), sentinel.ErrConflict)

	found, err := s.store.FindRegistrationForm(s.ctx, rf.RegistrationForm.ID)
	s.Require().NoError(err)
	s.Equal(rf.RegistrationForm.Name, found.Name)

	pendingID := id.PendingProjectID(uuid.New())
	a := &answer.RegistrationFormAnswer{
		ID:                 id.FormAnswerID(uuid.New()),
		RegistrationFormID: rf.RegistrationForm.ID,
		PendingProjectID:   pendingID,
		Items:              rf.Answer(true, 1),
		CreatedAt:          s.now,
		UpdatedAt:          s.now,
	}
	s.Require().NoError(s.store.SaveRegistrationFormAnswer(s.ctx, a))

	got, err := s.store.FindRegistrationFormAnswer(s.ctx, rf.RegistrationForm.ID, pendingID)
	s.Require().NoError(err)
	s.Equal(a.ID, got.ID)

	_, err = s.store.FindRegistrationFormAnswer(s.ctx, rf.RegistrationForm.ID, id.PendingProjectID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
}
