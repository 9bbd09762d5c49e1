package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"festa/internal/ratelimit/models"
)

// slideWindow trims the window, counts what is left and records the request only
// while the count is under the limit. It runs as one script so concurrent callers
// cannot both observe the last free slot.
//
// KEYS[1] window key
// ARGV    cutoff score, request score, limit, window ms, member
// returns {allowed (0|1), count before the request, oldest score or ""}
var slideWindow = redis.NewScript(`
local key = KEYS[1]
redis.call('ZREMRANGEBYSCORE', key, '-inf', ARGV[1])
local count = redis.call('ZCARD', key)
local allowed = 0
if count < tonumber(ARGV[3]) then
	redis.call('ZADD', key, ARGV[2], ARGV[5])
	redis.call('PEXPIRE', key, ARGV[4])
	allowed = 1
end
local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
local first = ''
if #oldest > 0 then
	first = oldest[2]
end
return {allowed, count, first}
`)

// Redis keeps each window as a sorted set of request timestamps so that every
// server instance shares one limit per key.
type Redis struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client, now: time.Now}
}

func (s *Redis) Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.Result, error) {
	now := s.now()
	cutoff := now.Add(-window)

	reply, err := slideWindow.Run(ctx, s.client, []string{key},
		strconv.FormatInt(cutoff.UnixNano(), 10),
		strconv.FormatInt(now.UnixNano(), 10),
		limit,
		max(window.Milliseconds(), 1),
		uuid.NewString(),
	).Slice()
	if err != nil {
		return nil, fmt.Errorf("ratelimit window %s: %w", key, err)
	}
	allowed, count, resetAt, err := parseSlideReply(reply, now, window)
	if err != nil {
		return nil, fmt.Errorf("ratelimit window %s: %w", key, err)
	}

	if !allowed {
		return &models.Result{
			Allowed:    false,
			Limit:      limit,
			ResetAt:    resetAt,
			RetryAfter: retryAfter(resetAt.Sub(now)),
		}, nil
	}
	return &models.Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - count - 1,
		ResetAt:   resetAt,
	}, nil
}

func parseSlideReply(reply []any, now time.Time, window time.Duration) (bool, int, time.Time, error) {
	if len(reply) != 3 {
		return false, 0, time.Time{}, fmt.Errorf("unexpected script reply length %d", len(reply))
	}
	allowed, ok := reply[0].(int64)
	if !ok {
		return false, 0, time.Time{}, fmt.Errorf("unexpected allowed flag %T", reply[0])
	}
	count, ok := reply[1].(int64)
	if !ok {
		return false, 0, time.Time{}, fmt.Errorf("unexpected count %T", reply[1])
	}
	resetAt := now.Add(window)
	if first, _ := reply[2].(string); first != "" {
		score, err := strconv.ParseFloat(first, 64)
		if err != nil {
			return false, 0, time.Time{}, fmt.Errorf("oldest score: %w", err)
		}
		resetAt = time.Unix(0, int64(score)).Add(window)
	}
	return allowed == 1, int(count), resetAt, nil
}

func (s *Redis) Reset(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
