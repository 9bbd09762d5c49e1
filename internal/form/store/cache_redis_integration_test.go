//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"festa/internal/form/formtest"
	"festa/internal/form/store"
	"festa/pkg/platform/sentinel"
	"festa/pkg/testutil/containers"
)

type CachedFormStoreSuite struct {
	suite.Suite
	redis   *containers.RedisContainer
	backend *store.InMemory
	cache   *store.CachedFormStore
	now     time.Time
}

func TestCachedFormStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CachedFormStoreSuite))
}

func (s *CachedFormStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.now = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
}

func (s *CachedFormStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.backend = store.NewInMemory()
	s.cache = store.NewCachedFormStore(s.backend, s.redis.Client, store.WithCacheTTL(time.Minute))
}

func (s *CachedFormStoreSuite) TestReadThrough() {
	ctx := context.Background()
	fx := formtest.NewForm(s.now, formtest.Everyone())
	s.Require().NoError(s.cache.CreateForm(ctx, fx.Form))

	_, err := s.cache.FindForm(ctx, fx.Form.ID)
	s.Require().NoError(err)

	ttl, err := s.redis.Client.TTL(ctx, "form:"+fx.Form.ID.String()).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))

	s.Run("served from cache on the next read", func() {
		got, err := s.cache.FindForm(ctx, fx.Form.ID)
		s.Require().NoError(err)
		s.NotSame(fx.Form, got)
		s.Equal(fx.Form.Name, got.Name)
		s.Equal(fx.Form.Items.Len(), got.Items.Len())
	})
}

func (s *CachedFormStoreSuite) TestUpdateInvalidates() {
	ctx := context.Background()
	fx := formtest.NewForm(s.now, formtest.Everyone())
	s.Require().NoError(s.cache.CreateForm(ctx, fx.Form))
	_, err := s.cache.FindForm(ctx, fx.Form.ID)
	s.Require().NoError(err)

	content := fx.Form.Content()
	content.Name = "renamed"
	s.Require().NoError(fx.Form.Replace(content, s.now))
	s.Require().NoError(s.cache.UpdateForm(ctx, fx.Form))

	got, err := s.cache.FindForm(ctx, fx.Form.ID)
	s.Require().NoError(err)
	s.Equal("renamed", got.Name)
}

func (s *CachedFormStoreSuite) TestCorruptEntryFallsBack() {
	ctx := context.Background()
	fx := formtest.NewForm(s.now, formtest.Everyone())
	s.Require().NoError(s.cache.CreateForm(ctx, fx.Form))
	s.Require().NoError(s.redis.Client.Set(ctx, "form:"+fx.Form.ID.String(), "{not json", 0).Err())

	got, err := s.cache.FindForm(ctx, fx.Form.ID)
	s.Require().NoError(err)
	s.Equal(fx.Form.ID, got.ID)
}

func (s *CachedFormStoreSuite) TestMissingFormIsNotCached() {
	ctx := context.Background()
	fx := formtest.NewForm(s.now, formtest.Everyone())

	_, err := s.cache.FindForm(ctx, fx.Form.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	n, err := s.redis.Client.Exists(ctx, "form:"+fx.Form.ID.String()).Result()
	s.Require().NoError(err)
	s.Zero(n)
}
