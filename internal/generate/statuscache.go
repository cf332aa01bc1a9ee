package generate

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultStatusTTL = 2 * time.Second

// RedisStatusCache absorbs status poll traffic. The TTL is short on
// purpose: a stale entry only delays a visible transition by one poll.
type RedisStatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ StatusCache = (*RedisStatusCache)(nil)

func NewRedisStatusCache(client *redis.Client, ttl time.Duration) *RedisStatusCache {
	if ttl <= 0 {
		ttl = defaultStatusTTL
	}
	return &RedisStatusCache{client: client, ttl: ttl}
}

// cachedRequest keeps OwnerID in the cache payload; the Request JSON form
// drops it because it is never sent to clients.
type cachedRequest struct {
	Request
	OwnerID string `json:"ownerId"`
}

func statusKey(requestID string) string {
	return "genstatus:" + requestID
}

func (c *RedisStatusCache) Get(ctx context.Context, requestID string) (*Request, error) {
	data, err := c.client.Get(ctx, statusKey(requestID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var cached cachedRequest
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	req := cached.Request
	req.OwnerID = cached.OwnerID
	return &req, nil
}

func (c *RedisStatusCache) Set(ctx context.Context, req Request) error {
	data, err := json.Marshal(cachedRequest{Request: req, OwnerID: req.OwnerID})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statusKey(req.ID), data, c.ttl).Err()
}
