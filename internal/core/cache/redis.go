package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Cache is a read-through Redis cache. Concurrent misses on the same key
// share one load.
type Cache struct {
	RDB    *redis.Client
	Prefix string
	sf     singleflight.Group
}

func New(addr, pass string, db int) *Cache {
	return &Cache{
		RDB:    redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		Prefix: "crm:",
	}
}

func (c *Cache) key(k string) string { return c.Prefix + k }

func (c *Cache) Ping(ctx context.Context) error { return c.RDB.Ping(ctx).Err() }

func (c *Cache) Close() error { return c.RDB.Close() }

// GetOrLoad returns the cached bytes for key or calls load and stores its
// result for ttl. A Redis failure degrades to calling load.
func (c *Cache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	k := c.key(key)
	b, err := c.RDB.Get(ctx, k).Bytes()
	if err == nil {
		return b, nil
	}
	v, err, _ := c.sf.Do(k, func() (any, error) {
		b, e := load(ctx)
		if e != nil {
			return nil, e
		}
		_ = c.RDB.Set(ctx, k, b, ttl).Err()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Invalidate drops the given keys.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	if err := c.RDB.Del(ctx, full...).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
