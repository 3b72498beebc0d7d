package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a small read-through JSON cache over Redis. A zero-address
// config yields a disabled cache: every Get misses and Set is a no-op,
// so callers never branch on whether Redis is deployed.
type Cache struct {
	rdb *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		return &Cache{}
	}

	return &Cache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *Cache) GetJSON(ctx context.Context, key string, v any) bool {
	if c.rdb == nil {
		return false
	}

	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("cache get:", err)
		}
		return false
	}

	return json.Unmarshal(b, v) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if c.rdb == nil {
		return
	}

	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, b, ttl).Err(); err != nil {
		log.Println("cache set:", err)
	}
}
