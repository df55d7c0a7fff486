package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const defaultRedisHashKey = "route-validator:distance_cache"

// RedisDistanceStore keeps the distance cache in a single Redis hash
// (field = cache key, value = kilometers).
type RedisDistanceStore struct {
	client  *redis.Client
	hashKey string
}

func NewRedisDistanceStore(client *redis.Client, hashKey string) *RedisDistanceStore {
	if hashKey == "" {
		hashKey = defaultRedisHashKey
	}
	return &RedisDistanceStore{client: client, hashKey: hashKey}
}

func (s *RedisDistanceStore) Load(ctx context.Context) (map[string]float64, error) {
	raw, err := s.client.HGetAll(ctx, s.hashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis cache: hgetall %q: %w", s.hashKey, err)
	}

	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		km, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("redis cache: field %q: %w", k, err)
		}
		out[k] = km
	}

	return out, nil
}

// Save swaps the hash for entries inside one MULTI/EXEC.
func (s *RedisDistanceStore) Save(ctx context.Context, entries map[string]float64) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.hashKey)
		if len(entries) == 0 {
			return nil
		}

		values := make(map[string]any, len(entries))
		for k, km := range entries {
			values[k] = strconv.FormatFloat(km, 'g', -1, 64)
		}
		pipe.HSet(ctx, s.hashKey, values)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis cache: save %q: %w", s.hashKey, err)
	}

	return nil
}

func (s *RedisDistanceStore) Close() error {
	return s.client.Close()
}
