package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/rpgo/withdrawal-simulator/internal/domain"
)

// KeyPrefix namespaces projection entries in redis.
const KeyPrefix = "wdsim:projection:"

// DefaultTTL applies when a RedisStore is created with a non-positive TTL.
const DefaultTTL = 10 * time.Minute

// RedisStore keeps projection results in redis as JSON with a TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore connects to addr and verifies the connection with PING.
func NewRedisStore(ctx context.Context, addr string, ttl time.Duration) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis connection to %s failed: %w", addr, err)
	}
	return newRedisStoreWithClient(rdb, ttl), nil
}

func newRedisStoreWithClient(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, key string) (*domain.ProjectionResult, bool, error) {
	data, err := r.rdb.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	result, err := decodePayload(data)
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, result *domain.ProjectionResult) error {
	data, err := encodePayload(result)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, KeyPrefix+key, data, r.ttl).Err()
}

// encodePayload and decodePayload define the stored value format.
func encodePayload(result *domain.ProjectionResult) ([]byte, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode projection: %w", err)
	}
	return data, nil
}

func decodePayload(data []byte) (*domain.ProjectionResult, error) {
	var result domain.ProjectionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode cached projection: %w", err)
	}
	return &result, nil
}

func (r *RedisStore) Close() error {
	return r.rdb.Close()
}
