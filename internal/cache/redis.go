package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces all media payload keys in Redis to avoid collisions.
const keyPrefix = "codl:media:"

func init() {
	Register("redis", newRedisCache)
}

// redisCache implements the Cache interface using Redis/Valkey.
//
// Each payload is stored under its own prefixed key with a per-key TTL, so
// expiry happens server-side without application cleanup. Capacity-based
// eviction is delegated to the server's maxmemory policy rather than
// replicated in the application: media payloads are large opaque blobs and
// precise LRU ordering buys nothing here. OnEvict is therefore never invoked
// by this provider.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

func newRedisCache(cfg ProviderConfig) (Cache, error) {
	if cfg.RedisAddress == "" {
		return nil, errors.New("cache: redis provider requires an address")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Fail fast on unreachable servers instead of erroring per operation.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: redis ping failed: %w", err)
	}

	return &redisCache{
		client: client,
		ttl:    cfg.TTL,
		logger: cfg.Logger,
	}, nil
}

func (r *redisCache) reportError(err error, msg string) {
	if r.logger != nil && err != nil {
		r.logger.Error(err, msg)
	}
}

func (r *redisCache) Get(key string) ([]byte, bool) {
	val, err := r.client.Get(context.Background(), keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.reportError(err, "redis cache get failed")
		}
		return nil, false
	}
	return val, true
}

func (r *redisCache) Set(key string, value []byte) {
	if err := r.client.Set(context.Background(), keyPrefix+key, value, r.ttl).Err(); err != nil {
		r.reportError(err, "redis cache set failed")
	}
}

func (r *redisCache) Contains(key string) bool {
	n, err := r.client.Exists(context.Background(), keyPrefix+key).Result()
	if err != nil {
		r.reportError(err, "redis cache exists failed")
		return false
	}
	return n > 0
}

// Len counts the keys under this cache's prefix by iterating with SCAN.
// This is a scrape-time operation, not a hot path.
func (r *redisCache) Len() int {
	ctx := context.Background()
	var cursor uint64
	count := 0
	for {
		keys, next, err := r.client.Scan(ctx, cursor, keyPrefix+"*", 512).Result()
		if err != nil {
			r.reportError(err, "redis cache scan failed")
			return count
		}
		count += len(keys)
		cursor = next
		if cursor == 0 {
			return count
		}
	}
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
