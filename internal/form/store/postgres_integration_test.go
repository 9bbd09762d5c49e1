//go:build integration

package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"festa/internal/form/answer"
	"festa/internal/form/dto"
	"festa/internal/form/formtest"
	"festa/internal/form/models"
	"festa/internal/form/store"
	projectModels "festa/internal/project/models"
	id "festa/pkg/domain"
	"festa/pkg/platform/sentinel"
	"festa/pkg/platform/tx"
	"festa/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
	now      time.Time
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
	s.now = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(),
		"form_answers", "registration_form_answers", "forms", "registration_forms")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestFormRoundTrip() {
	ctx := context.Background()
	included := id.ProjectID(uuid.New())
	excluded := id.ProjectID(uuid.New())
	cooking := projectModels.CategoryCooking
	fx := formtest.NewForm(s.now, models.FormCondition{
		Query:    projectModels.MustQuery(projectModels.Conjunction{Category: &cooking}),
		Includes: models.MustProjectIDSet(included),
		Excludes: models.MustProjectIDSet(excluded),
	})
	s.Require().NoError(s.store.CreateForm(ctx, fx.Form))

	got, err := s.store.FindForm(ctx, fx.Form.ID)
	s.Require().NoError(err)
	if diff := cmp.Diff(dto.FromForm(fx.Form), dto.FromForm(got)); diff != "" {
		s.Failf("stored form differs", "(-want +got):\n%s", diff)
	}

	s.Run("duplicate id conflicts", func() {
		s.ErrorIs(s.store.CreateForm(ctx, fx.Form), sentinel.ErrConflict)
	})

	s.Run("update replaces content", func() {
		content := fx.Form.Content()
		content.Name = "renamed"
		s.Require().NoError(fx.Form.Replace(content, s.now.Add(time.Minute)))
		s.Require().NoError(s.store.UpdateForm(ctx, fx.Form))

		got, err := s.store.FindForm(ctx, fx.Form.ID)
		s.Require().NoError(err)
		s.Equal("renamed", got.Name)
	})

	s.Run("update of unknown form", func() {
		other := formtest.NewForm(s.now, formtest.Everyone()).Form
		s.ErrorIs(s.store.UpdateForm(ctx, other), sentinel.ErrNotFound)
	})
}

func (s *PostgresStoreSuite) TestListForms() {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		f := formtest.NewForm(s.now.Add(time.Duration(i)*time.Hour), formtest.Everyone()).Form
		s.Require().NoError(s.store.CreateForm(ctx, f))
	}
	all, err := s.store.ListForms(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.True(all[0].CreatedAt.Before(all[2].CreatedAt))
}

// TestConcurrentAnswerUpsert checks that racing submissions for the same project
// leave exactly one row holding one of the submitted answers.
func (s *PostgresStoreSuite) TestConcurrentAnswerUpsert() {
	ctx := context.Background()
	fx := formtest.NewForm(s.now, formtest.Everyone())
	s.Require().NoError(s.store.CreateForm(ctx, fx.Form))
	projectID := id.ProjectID(uuid.New())

	const goroutines = 20
	var wg sync.WaitGroup
	errs := make(chan error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- s.store.SaveFormAnswer(ctx, &answer.FormAnswer{
				ID:        id.FormAnswerID(uuid.New()),
				FormID:    fx.Form.ID,
				ProjectID: projectID,
				AuthorID:  id.UserID(uuid.New()),
				Items:     fx.Answer(true, i%3),
				CreatedAt: s.now,
				UpdatedAt: s.now,
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	var count int
	s.Require().NoError(s.postgres.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM form_answers WHERE form_id = $1`, uuid.UUID(fx.Form.ID)).Scan(&count))
	s.Equal(1, count)

	got, err := s.store.FindFormAnswer(ctx, fx.Form.ID, projectID)
	s.Require().NoError(err)
	s.NoError(answer.Check(fx.Form.Items, got.Items))
}

func (s *PostgresStoreSuite) TestAnswerInsideRolledBackTransaction() {
	ctx := context.Background()
	fx := formtest.NewForm(s.now, formtest.Everyone())
	s.Require().NoError(s.store.CreateForm(ctx, fx.Form))
	projectID := id.ProjectID(uuid.New())

	runner := tx.NewPostgresRunner(s.postgres.DB)
	err := runner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.SaveFormAnswer(ctx, &answer.FormAnswer{
			ID:        id.FormAnswerID(uuid.New()),
			FormID:    fx.Form.ID,
			ProjectID: projectID,
			AuthorID:  id.UserID(uuid.New()),
			Items:     fx.Answer(false),
			CreatedAt: s.now,
			UpdatedAt: s.now,
		}); err != nil {
			return err
		}
		return sentinel.ErrInvalidState
	})
	s.ErrorIs(err, sentinel.ErrInvalidState)

	_, err = s.store.FindFormAnswer(ctx, fx.Form.ID, projectID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestRegistrationForms() {
	ctx := context.Background()
	rf := formtest.NewRegistrationForm(s.now, projectModels.AlwaysQuery())
	s.Require().NoError(s.store.CreateRegistrationForm(ctx, rf.RegistrationForm))

	got, err := s.store.FindRegistrationForm(ctx, rf.RegistrationForm.ID)
	s.Require().NoError(err)
	if diff := cmp.Diff(dto.FromRegistrationForm(rf.RegistrationForm), dto.FromRegistrationForm(got)); diff != "" {
		s.Failf("stored registration form differs", "(-want +got):\n%s", diff)
	}

	pendingID := id.PendingProjectID(uuid.New())
	a := &answer.RegistrationFormAnswer{
		ID:                 id.FormAnswerID(uuid.New()),
		RegistrationFormID: rf.RegistrationForm.ID,
		PendingProjectID:   pendingID,
		AuthorID:           id.UserID(uuid.New()),
		Items:              rf.Answer(true, 0, 2),
		CreatedAt:          s.now,
		UpdatedAt:          s.now,
	}
	s.Require().NoError(s.store.SaveRegistrationFormAnswer(ctx, a))

	stored, err := s.store.FindRegistrationFormAnswer(ctx, rf.RegistrationForm.ID, pendingID)
	s.Require().NoError(err)
	s.Equal(a.ID, stored.ID)
	s.Equal(dto.FromAnswer(a.Items), dto.FromAnswer(stored.Items))
}
