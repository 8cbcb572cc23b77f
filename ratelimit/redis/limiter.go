// Package redislimiter is a fixed-window per-key rate limiter shared across
// server instances via Redis.
package redislimiter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limit struct {
	Limit  int64
	Window time.Duration
}

type Limiter struct {
	rdb    *redis.Client
	limits map[string]Limit
}

func New(rdb *redis.Client, limits map[string]Limit) *Limiter {
	return &Limiter{rdb: rdb, limits: limits}
}

func (l *Limiter) AllowNamed(bucket, key string) (bool, error) {
	lim, ok := l.limits[bucket]
	if !ok {
		lim, ok = l.limits["default"]
		if !ok {
			return true, nil
		}
	}
	ctx := context.Background()
	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, lim.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= lim.Limit, nil
}
