package repository

import (
	"context"
	"encoding/json"
	"time"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const progressCacheTTL = 5 * time.Minute

// ProgressCache is a read-through cache for the progress snapshot
// served on the content page. Misses and backend failures both fall
// through to Mongo.
type ProgressCache interface {
	Get(ctx context.Context, userID string) (*model.Progress, bool)
	Set(ctx context.Context, userID string, progress *model.Progress)
	Invalidate(ctx context.Context, userID string)
}

type redisProgressCache struct {
	client *redis.Client
}

func NewProgressCache(client *redis.Client) ProgressCache {
	return &redisProgressCache{client: client}
}

func progressKey(userID string) string {
	return "progress:" + userID
}

func (c *redisProgressCache) Get(ctx context.Context, userID string) (*model.Progress, bool) {
	data, err := c.client.Get(ctx, progressKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("progress cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var progress model.Progress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, false
	}
	return &progress, true
}

func (c *redisProgressCache) Set(ctx context.Context, userID string, progress *model.Progress) {
	data, err := json.Marshal(progress)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, progressKey(userID), data, progressCacheTTL).Err(); err != nil {
		logger.Log.Warn("progress cache write failed", zap.Error(err))
	}
}

func (c *redisProgressCache) Invalidate(ctx context.Context, userID string) {
	if err := c.client.Del(ctx, progressKey(userID)).Err(); err != nil {
		logger.Log.Warn("progress cache invalidation failed", zap.Error(err))
	}
}
