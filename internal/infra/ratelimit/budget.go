// Package ratelimit keeps a deployment-wide budget of search provider calls.
package ratelimit

import (
	"context"
	"strconv"
	"time"

	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shopcompare:budget:"

// RedisBudget is a sliding-window counter in a Redis sorted set, shared by
// every instance that points at the same Redis.
type RedisBudget struct {
	rdb    redis.UniversalClient
	key    string
	limit  int
	window time.Duration
	clock  clock.Clock
}

func NewRedisBudget(rdb redis.UniversalClient, name string, limit int, window time.Duration, clk clock.Clock) *RedisBudget {
	return &RedisBudget{
		rdb:    rdb,
		key:    keyPrefix + name,
		limit:  limit,
		window: window,
		clock:  clk,
	}
}

// Allow records a call and reports whether it fits in the window. A denied
// call is still recorded, so a caller hammering the budget stays blocked.
func (b *RedisBudget) Allow(ctx context.Context) (bool, error) {
	if b.limit <= 0 {
		return true, nil
	}
	now := b.clock.Now()
	windowStart := now.Add(-b.window)

	pipe := b.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, b.key, "-inf", strconv.FormatInt(windowStart.UnixNano(), 10))
	countCmd := pipe.ZCard(ctx, b.key)
	pipe.ZAdd(ctx, b.key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	pipe.Expire(ctx, b.key, b.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, errs.Wrap(err, "budget pipeline failed")
	}
	return countCmd.Val() < int64(b.limit), nil
}

// Unlimited is used when no Redis is configured.
type Unlimited struct{}

func (Unlimited) Allow(context.Context) (bool, error) { return true, nil }
