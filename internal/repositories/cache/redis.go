package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "tallypro:reports"

// RedisReportCache shares cached reports between instances. The data
// revision lives in Redis too, so a write on one instance invalidates all.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisReportCache wraps an existing client.
func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{client: client, ttl: ttl}
}

var _ portsrepo.ReportCache = (*RedisReportCache)(nil)

func (c *RedisReportCache) revisionKey() string {
	return redisKeyPrefix + ":revision"
}

func (c *RedisReportCache) key(revision uint64, key string) string {
	return fmt.Sprintf("%s:%d:%s", redisKeyPrefix, revision, key)
}

func (c *RedisReportCache) Revision(ctx context.Context) (uint64, error) {
	rev, err := c.client.Get(ctx, c.revisionKey()).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read report revision: %w", err)
	}
	return rev, nil
}

func (c *RedisReportCache) Get(ctx context.Context, revision uint64, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.key(revision, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached report: %w", err)
	}
	return value, true, nil
}

// Set writes under the revision the report was computed for. A value
// computed before an Invalidate lands under an old revision no reader asks for.
func (c *RedisReportCache) Set(ctx context.Context, revision uint64, key string, value []byte) error {
	if err := c.client.Set(ctx, c.key(revision, key), value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}

// Invalidate increments the shared revision. Entries of older revisions
// expire through their TTL.
func (c *RedisReportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.revisionKey()).Err(); err != nil {
		return fmt.Errorf("failed to bump report revision: %w", err)
	}
	return nil
}
