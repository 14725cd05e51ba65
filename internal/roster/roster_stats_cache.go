package roster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	StatsCacheKey = "roster:stats"
	StatsCacheTTL = time.Minute
)

// StatsCache fronts the roster aggregate counts. A nil client disables
// caching but keeps concurrent loads collapsed.
type StatsCache struct {
	rdb    *redis.Client
	sf     singleflight.Group
	logger *zap.Logger
}

func NewStatsCache(rdb *redis.Client, logger ...*zap.Logger) *StatsCache {
	l := zap.L().Named("roster.stats_cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("roster.stats_cache")
	}
	return &StatsCache{rdb: rdb, logger: l}
}

func (c *StatsCache) Get(ctx context.Context, load func(ctx context.Context) (StatsResponse, error)) (StatsResponse, error) {
	if c.rdb != nil {
		cached, err := c.rdb.Get(ctx, StatsCacheKey).Result()
		if err == nil {
			var resp StatsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		} else if err != redis.Nil {
			c.logger.Warn("roster stats cache read failed", zap.Error(err))
		}
	}

	v, err, _ := c.sf.Do(StatsCacheKey, func() (any, error) {
		resp, err := load(ctx)
		if err != nil {
			return StatsResponse{}, err
		}
		if c.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := c.rdb.Set(ctx, StatsCacheKey, data, StatsCacheTTL).Err(); err != nil {
					c.logger.Warn("roster stats cache write failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return StatsResponse{}, err
	}
	return v.(StatsResponse), nil
}

func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, StatsCacheKey).Err(); err != nil {
		c.logger.Warn("roster stats cache invalidation failed", zap.Error(err))
	}
}
