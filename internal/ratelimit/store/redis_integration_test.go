//go:build integration

package store

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"festa/pkg/testutil/containers"
)

type RedisSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *Redis
	clock time.Time
}

func TestRedisSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisSuite))
}

func (s *RedisSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
}

func (s *RedisSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.clock = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	s.store = NewRedis(s.redis.Client)
	s.store.now = func() time.Time { return s.clock }
}

func (s *RedisSuite) TestLimitAndSlide() {
	ctx := context.Background()
	for i := range testLimit {
		result, err := s.store.Allow(ctx, "user", testLimit, testWindow)
		s.Require().NoError(err)
		s.Require().True(result.Allowed)
		s.Equal(testLimit-i-1, result.Remaining)
		s.clock = s.clock.Add(time.Millisecond)
	}

	result, err := s.store.Allow(ctx, "user", testLimit, testWindow)
	s.Require().NoError(err)
	s.False(result.Allowed)
	s.Positive(result.RetryAfter)

	s.clock = s.clock.Add(testWindow)
	result, err = s.store.Allow(ctx, "user", testLimit, testWindow)
	s.Require().NoError(err)
	s.True(result.Allowed)
}

func (s *RedisSuite) TestReset() {
	ctx := context.Background()
	for range testLimit {
		_, err := s.store.Allow(ctx, "reset", testLimit, testWindow)
		s.Require().NoError(err)
		s.clock = s.clock.Add(time.Millisecond)
	}
	s.Require().NoError(s.store.Reset(ctx, "reset"))

	result, err := s.store.Allow(ctx, "reset", testLimit, testWindow)
	s.Require().NoError(err)
	s.True(result.Allowed)
}

func (s *RedisSuite) TestConcurrentCallersNeverExceedLimit() {
	const callers = 4 * testLimit
	ctx := context.Background()

	var allowed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for range callers {
		g.Go(func() error {
			result, err := s.store.Allow(gctx, "burst", testLimit, testWindow)
			if err != nil {
				return err
			}
			if result.Allowed {
				allowed.Add(1)
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	s.Equal(int64(testLimit), allowed.Load())
	card, err := s.redis.Client.ZCard(ctx, "burst").Result()
	s.Require().NoError(err)
	s.Equal(int64(testLimit), card)
}

func (s *RedisSuite) TestKeyExpiresWithWindow() {
	ctx := context.Background()
	_, err := s.store.Allow(ctx, "ttl", testLimit, testWindow)
	s.Require().NoError(err)

	ttl, err := s.redis.Client.PTTL(ctx, "ttl").Result()
	s.Require().NoError(err)
	s.Positive(ttl)
	s.LessOrEqual(ttl, testWindow)
}
