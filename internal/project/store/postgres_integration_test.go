//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"festa/internal/form/formtest"
	"festa/internal/project/models"
	"festa/internal/project/store"
	id "festa/pkg/domain"
	"festa/pkg/platform/sentinel"
	"festa/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "projects", "pending_projects"))
}

func (s *PostgresStoreSuite) TestProjectRoundTrip() {
	ctx := context.Background()
	p := formtest.NewProject(id.UserID(uuid.New()), models.CategoryCooking, models.AttributeOutdoor, models.AttributeAcademic)
	s.Require().NoError(s.store.CreateProject(ctx, p))

	got, err := s.store.FindProject(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p.Code(), got.Code())
	s.Equal(p.Attributes(), got.Attributes())
	s.Equal(p.Details.NameKana.Value(), got.Details.NameKana.Value())
	s.True(got.IsMember(p.SubownerID))

	s.Run("same code conflicts", func() {
		clash, err := models.NewProject(id.ProjectID(uuid.New()), p.Index, id.UserID(uuid.New()), id.UserID(uuid.New()),
			p.Details, models.CategoryCooking, 0, p.CreatedAt)
		s.Require().NoError(err)
		s.ErrorIs(s.store.CreateProject(ctx, clash), sentinel.ErrConflict)
	})

	s.Run("unknown project", func() {
		_, err := s.store.FindProject(ctx, id.ProjectID(uuid.New()))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *PostgresStoreSuite) TestPendingProjectRoundTrip() {
	ctx := context.Background()
	p := formtest.NewPendingProject(id.UserID(uuid.New()), models.CategoryFood)
	s.Require().NoError(s.store.CreatePendingProject(ctx, p))

	got, err := s.store.FindPendingProject(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(models.CategoryFood, got.Category())
	s.True(got.Attributes().IsEmpty())
}
