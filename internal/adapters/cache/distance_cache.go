package cache

import (
	"context"
	"fmt"
	"route-validator/internal/platform/obs"
	"route-validator/internal/ports"

	"go.uber.org/zap"
)

// Key is the cache key of a directional, strategy-scoped distance.
// (a, b) and (b, a) are distinct keys, as are the same pair under two strategies.
func Key(origin, destination, strategy string) string {
	return origin + "_" + destination + "_" + strategy
}

// DistanceCache holds distances in memory for one validation pass.
//
// It is seeded from its store when constructed and written back as a full
// snapshot by Persist. Entries are never invalidated. Not safe for concurrent use.
type DistanceCache struct {
	entries map[string]float64
	store   ports.DistanceStore
	logger  *zap.Logger
}

// NewDistanceCache loads the persisted snapshot from store.
func NewDistanceCache(ctx context.Context, store ports.DistanceStore, logger *zap.Logger) (_ *DistanceCache, err error) {
	defer obs.Time(ctx, logger, "distance.cache.Load")(&err)

	if store == nil {
		return nil, fmt.Errorf("load distance cache: store is nil")
	}

	entries, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load distance cache: %w", err)
	}
	if entries == nil {
		entries = map[string]float64{}
	}

	logger.Debug("distance cache loaded", zap.Int("entries", len(entries)))

	return &DistanceCache{entries: entries, store: store, logger: logger}, nil
}

// NewMemoryDistanceCache returns a cache with no durable backing; Persist is a no-op.
func NewMemoryDistanceCache() *DistanceCache {
	return &DistanceCache{entries: map[string]float64{}, logger: zap.NewNop()}
}

func (c *DistanceCache) Get(key string) (float64, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *DistanceCache) Put(key string, km float64) {
	c.entries[key] = km
}

func (c *DistanceCache) Len() int { return len(c.entries) }

// Persist overwrites the store with every entry held in memory.
func (c *DistanceCache) Persist(ctx context.Context) (err error) {
	if c.store == nil {
		return nil
	}
	defer obs.Time(ctx, c.logger, "distance.cache.Persist")(&err)

	snapshot := make(map[string]float64, len(c.entries))
	for k, v := range c.entries {
		snapshot[k] = v
	}

	if err := c.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("persist distance cache: %w", err)
	}

	c.logger.Debug("distance cache persisted", zap.Int("entries", len(snapshot)))
	return nil
}
