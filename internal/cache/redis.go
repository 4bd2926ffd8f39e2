package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin JSON layer over Redis. A nil *Cache is valid and
// behaves as a cache that never hits, so callers don't have to care
// whether Redis is configured.
type Cache struct {
	client *redis.Client
}

func InitRedis(cfg *config.Config) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// the API works without Redis, just slower on identity lookups
		log.Printf("[redis] not available (%v), running without cache", err)
		return nil
	}

	log.Println("[redis] connected")
	return &Cache{client: client}
}

// GetJSON reads a key and unmarshals it into dest. Returns false when
// the key does not exist or the cache is disabled.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals value and stores it under key with a TTL in seconds.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttlSeconds int) error {
	if c == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	return c.client.Set(ctx, key, b, ttl).Err()
}

// Del removes a key. Used to invalidate a cached user after a profile write.
func (c *Cache) Del(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}
