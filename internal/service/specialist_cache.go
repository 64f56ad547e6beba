package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis keys for the specialist name lists
	RedisActiveSpecialistsKey = "specialists:names:active"
	RedisAllSpecialistsKey    = "specialists:names:all"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// SpecialistCache holds the specialist name lists shown in the form and
// filter comboboxes. A miss is reported as ok=false, never as an error.
type SpecialistCache interface {
	GetNames(ctx context.Context, activeOnly bool) (names []string, ok bool)
	SetNames(ctx context.Context, activeOnly bool, names []string)
	Invalidate(ctx context.Context)
}

type redisSpecialistCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewRedisSpecialistCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) SpecialistCache {
	return &redisSpecialistCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *redisSpecialistCache) GetNames(ctx context.Context, activeOnly bool) ([]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, cacheKey(activeOnly)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read specialist cache: %+v", err)
		}
		return nil, false
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		c.log.Warnf("Failed to decode specialist cache: %+v", err)
		return nil, false
	}
	return names, true
}

func (c *redisSpecialistCache) SetNames(ctx context.Context, activeOnly bool, names []string) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := json.Marshal(names)
	if err != nil {
		c.log.Warnf("Failed to encode specialist cache: %+v", err)
		return
	}
	if err := c.client.Set(ctx, cacheKey(activeOnly), raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write specialist cache: %+v", err)
	}
}

func (c *redisSpecialistCache) Invalidate(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.client.Del(ctx, RedisActiveSpecialistsKey, RedisAllSpecialistsKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate specialist cache: %+v", err)
	}
}

func cacheKey(activeOnly bool) string {
	if activeOnly {
		return RedisActiveSpecialistsKey
	}
	return RedisAllSpecialistsKey
}

// noopSpecialistCache is used when Redis is not configured.
type noopSpecialistCache struct{}

func NewNoopSpecialistCache() SpecialistCache {
	return noopSpecialistCache{}
}

func (noopSpecialistCache) GetNames(context.Context, bool) ([]string, bool) { return nil, false }
func (noopSpecialistCache) SetNames(context.Context, bool, []string)       {}
func (noopSpecialistCache) Invalidate(context.Context)                     {}
