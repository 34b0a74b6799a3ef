// Package cache opens the redis client used for read-through caching.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Config is what is needed to reach redis
type Config struct {
	Addr        string
	User        string
	Pass        string
	PingTimeout time.Duration
}

// Open creates the client and pings it. A zero PingTimeout skips the ping.
func Open(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.User,
		Password: cfg.Pass,
	})
	if cfg.PingTimeout == 0 {
		return rdb, nil
	}

	pCtx, pCancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer pCancel()
	if err := rdb.Ping(pCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	return rdb, nil
}
