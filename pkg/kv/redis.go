package kv

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis is a Store backed by a Redis instance, for sessions that must
// survive the process. Client errors are logged and reported as
// absence: the in-memory session state is authoritative and every
// mutation rewrites the full collection, so a dropped write heals on
// the next one.
type Redis struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedis wraps a Redis client. All keys are stored under prefix to
// keep sessions apart.
func NewRedis(client *redis.Client, prefix string, logger *zap.Logger) *Redis {
	return &Redis{client: client, prefix: prefix, logger: logger}
}

func (r *Redis) Get(key string) (string, bool) {
	v, err := r.client.Get(context.Background(), r.prefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		r.logger.Warn("Redis read failed, treating as absent",
			zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, true
}

func (r *Redis) Set(key, value string) {
	if err := r.client.Set(context.Background(), r.prefix+key, value, 0).Err(); err != nil {
		r.logger.Warn("Redis write failed, state kept in memory",
			zap.String("key", key), zap.Error(err))
	}
}
