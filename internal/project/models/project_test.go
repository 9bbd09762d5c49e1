package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
)

type ProjectSuite struct {
	suite.Suite
	details Details
	owner   id.UserID
	sub     id.UserID
	now     time.Time
}

func TestProjectSuite(t *testing.T) {
	suite.Run(t, new(ProjectSuite))
}

func (s *ProjectSuite) SetupTest() {
	d, err := NewDetails("やきそば屋", "ヤキソバヤ", "料理研究会", "リョウリケンキュウカイ", "")
	s.Require().NoError(err)
	s.details = d
	s.owner = id.UserID(uuid.New())
	s.sub = id.UserID(uuid.New())
	s.now = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
}

func (s *ProjectSuite) TestConstructionInvariants() {
	s.Run("rejects same owner and subowner", func() {
		_, err := NewProject(id.ProjectID(uuid.New()), 1, s.owner, s.owner, s.details, CategoryFood, 0, s.now)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("rejects index out of range", func() {
		_, err := NewProject(id.ProjectID(uuid.New()), MaxProjectIndex+1, s.owner, s.sub, s.details, CategoryFood, 0, s.now)
		s.Require().Error(err)
	})

	s.Run("rejects invalid category", func() {
		_, err := NewProject(id.ProjectID(uuid.New()), 1, s.owner, s.sub, s.details, Category("circus"), 0, s.now)
		s.Require().Error(err)
	})

	s.Run("builds code from category and index", func() {
		p, err := NewProject(id.ProjectID(uuid.New()), 7, s.owner, s.sub, s.details, CategoryGeneral, 0, s.now)
		s.Require().NoError(err)
		s.Equal("G007", p.Code())

		p, err = NewProject(id.ProjectID(uuid.New()), 123, s.owner, s.sub, s.details, CategoryCooking, 0, s.now)
		s.Require().NoError(err)
		s.Equal("C123", p.Code())
	})
}

func (s *ProjectSuite) TestMembership() {
	p, err := NewProject(id.ProjectID(uuid.New()), 1, s.owner, s.sub, s.details, CategoryStage, 0, s.now)
	s.Require().NoError(err)
	s.True(p.IsMember(s.owner))
	s.True(p.IsMember(s.sub))
	s.False(p.IsMember(id.UserID(uuid.New())))
}

func (s *ProjectSuite) TestDetailsValidation() {
	s.Run("rejects non-kana furigana", func() {
		_, err := NewDetails("模擬店", "mogiten", "group", "グループ", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("rejects empty name", func() {
		_, err := NewDetails("", "モギテン", "group", "グループ", "")
		s.Require().Error(err)
	})
}

func (s *ProjectSuite) TestPendingProjectFacts() {
	attrs := MustAttributeSet(AttributeOutdoor)
	p, err := NewPendingProject(id.PendingProjectID(uuid.New()), s.owner, s.details, CategoryFood, attrs, s.now)
	s.Require().NoError(err)

	var f Facts = p
	s.Equal(CategoryFood, f.Category())
	s.Equal(attrs, f.Attributes())
}
