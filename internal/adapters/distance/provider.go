package distance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"route-validator/internal/adapters/cache"
	"route-validator/internal/domain"
	"route-validator/internal/ports"

	"go.uber.org/zap"
)

// CachedDistanceProvider implements ports.DistanceProvider for location keys.
//
// It coordinates:
//   - Key resolution through the location registry
//   - A directional, strategy-scoped distance cache
//   - The strategy chosen at construction
//
// Not safe for concurrent use; one provider serves one validation pass.
type CachedDistanceProvider struct {
	registry *domain.Registry
	strategy ports.DistanceStrategy
	cache    *cache.DistanceCache
	logger   *zap.Logger
}

func NewCachedDistanceProvider(
	registry *domain.Registry,
	strategy ports.DistanceStrategy,
	distanceCache *cache.DistanceCache,
	logger *zap.Logger,
) (*CachedDistanceProvider, error) {
	if registry == nil {
		return nil, errors.New("distance provider: registry is nil")
	}
	if strategy == nil {
		return nil, errors.New("distance provider: strategy is nil")
	}
	if distanceCache == nil {
		return nil, errors.New("distance provider: cache is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CachedDistanceProvider{
		registry: registry,
		strategy: strategy,
		cache:    distanceCache,
		logger:   logger,
	}, nil
}

// Distance returns the cached value for (origin, destination, strategy) when present;
// otherwise it computes, caches and returns it.
func (p *CachedDistanceProvider) Distance(ctx context.Context, origin, destination string) (float64, error) {
	key := cache.Key(origin, destination, p.strategy.Name())
	if km, ok := p.cache.Get(key); ok {
		return km, nil
	}

	from, ok := p.registry.Lookup(origin)
	if !ok {
		return 0, fmt.Errorf("distance %q -> %q: %w: %q", origin, destination, domain.ErrUnknownLocation, origin)
	}

	to, ok := p.registry.Lookup(destination)
	if !ok {
		return 0, fmt.Errorf("distance %q -> %q: %w: %q", origin, destination, domain.ErrUnknownLocation, destination)
	}

	km, err := p.strategy.Compute(ctx, from.Coords, to.Coords)
	if err != nil {
		return 0, fmt.Errorf("distance %q -> %q: %s: %w", origin, destination, p.strategy.Name(), err)
	}

	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return 0, fmt.Errorf("distance %q -> %q: %s returned invalid distance %v", origin, destination, p.strategy.Name(), km)
	}

	p.cache.Put(key, km)
	p.logger.Debug("distance computed",
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.String("method", p.strategy.Name()),
		zap.Float64("km", km),
	)

	return km, nil
}

func (p *CachedDistanceProvider) Persist(ctx context.Context) error {
	return p.cache.Persist(ctx)
}
