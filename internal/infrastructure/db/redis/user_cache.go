package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adopet/account-service/internal/api/metrics"
	"github.com/adopet/account-service/internal/core/domain"
	"github.com/adopet/account-service/internal/core/ports"
)

const defaultProfileTTL = 5 * time.Minute

// CachedUserFinder is a read-through cache in front of lookup-by-id.
// Only the sanitized projection is stored: domain.User marshals without
// the password hash, so the digest never enters Redis.
// Key format: user:<id>
type CachedUserFinder struct {
	client *redis.Client
	next   ports.UserFinder
	ttl    time.Duration
}

// NewCachedUserFinder wraps next with a Redis cache. A non-positive ttl
// falls back to 5 minutes.
func NewCachedUserFinder(client *redis.Client, next ports.UserFinder, ttl time.Duration) *CachedUserFinder {
	if ttl <= 0 {
		ttl = defaultProfileTTL
	}
	return &CachedUserFinder{client: client, next: next, ttl: ttl}
}

// FindByID serves from cache when possible, falling through to the store
// on miss or on any Redis failure. Cache errors never fail the lookup.
func (c *CachedUserFinder) FindByID(ctx context.Context, id string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == nil {
		var user domain.User
		if jsonErr := json.Unmarshal(raw, &user); jsonErr == nil {
			metrics.ProfileCacheTotal.WithLabelValues("hit").Inc()
			return &user, nil
		}
	}
	// redis.Nil and transport errors both read as a miss.
	metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()

	user, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(user); err == nil {
		_ = c.client.Set(ctx, c.key(id), raw, c.ttl).Err()
	}
	return user, nil
}

// Invalidate drops the cached projection after a profile update.
func (c *CachedUserFinder) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *CachedUserFinder) key(id string) string {
	return "user:" + id
}
