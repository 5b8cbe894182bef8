package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prperemyshlev/vidverse/pkg/database"
	"github.com/redis/go-redis/v9"
)

// RateLimitResult describes one rate limit decision
type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter handles rate limiting using Redis
type RateLimiter struct {
	redis *database.Redis
	now   func() time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(redis *database.Redis) *RateLimiter {
	return &RateLimiter{redis: redis, now: time.Now}
}

// allowScript trims the window, counts it and records the request in one
// atomic step. It returns {allowed, count, oldestScore}.
var allowScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', '(' .. ARGV[1])
local count = redis.call('ZCARD', KEYS[1])
if count >= tonumber(ARGV[3]) then
	local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
	return {0, count, oldest[2] or ''}
end
redis.call('ZADD', KEYS[1], ARGV[2], ARGV[4])
redis.call('PEXPIRE', KEYS[1], ARGV[5])
return {1, count, ''}
`)

// Allow records a request under key using a sliding window log and reports
// whether it fits into limit requests per window. Rejected requests are not recorded.
func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (RateLimitResult, error) {
	result := RateLimitResult{Limit: limit}
	now := r.now()
	windowStart := now.Add(-window)
	redisKey := fmt.Sprintf("ratelimit:%s", key)
	member := fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString())

	reply, err := allowScript.Run(ctx, r.redis.Client, []string{redisKey},
		windowStart.UnixMilli(),
		now.UnixMilli(),
		limit,
		member,
		(window + time.Minute).Milliseconds(),
	).Slice()
	if err != nil {
		return result, fmt.Errorf("failed to evaluate rate limit window: %w", err)
	}
	if len(reply) != 3 {
		return result, fmt.Errorf("unexpected rate limit reply: %v", reply)
	}

	allowed, _ := reply[0].(int64)
	count, _ := reply[1].(int64)
	if allowed == 0 {
		result.RetryAfter = window
		if score, ok := reply[2].(string); ok && score != "" {
			if oldestMs, err := strconv.ParseFloat(score, 64); err == nil {
				oldestAt := time.UnixMilli(int64(oldestMs))
				if remaining := oldestAt.Add(window).Sub(now); remaining > 0 {
					result.RetryAfter = remaining
				}
			}
		}
		return result, nil
	}

	result.Allowed = true
	result.Remaining = limit - int(count) - 1
	return result, nil
}
