package distance

import (
	"context"
	"errors"
	"route-validator/internal/adapters/cache"
	"route-validator/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingStrategy struct {
	name  string
	km    float64
	err   error
	calls int
}

func (s *countingStrategy) Name() string { return s.name }

func (s *countingStrategy) Compute(ctx context.Context, from, to domain.Coordinates) (float64, error) {
	s.calls++
	return s.km, s.err
}

func testRegistry(t *testing.T) *domain.Registry {
	t.Helper()
	r, err := domain.NewRegistry(
		[]domain.DepotRecord{{DepotID: 1, Coords: domain.Coordinates{Lat: 0, Lon: 0}}},
		[]domain.ClientRecord{
			{ClientID: 1, Demand: 5, Coords: domain.Coordinates{Lat: 0, Lon: 1}},
			{ClientID: 2, Demand: 3, Coords: domain.Coordinates{Lat: 1, Lon: 1}},
		},
	)
	require.NoError(t, err)
	return r
}

func TestCachedDistanceProviderComputesOnce(t *testing.T) {
	ctx := context.Background()
	strategy := &countingStrategy{name: MethodHaversine, km: 42}

	p, err := NewCachedDistanceProvider(testRegistry(t), strategy, cache.NewMemoryDistanceCache(), zap.NewNop())
	require.NoError(t, err)

	first, err := p.Distance(ctx, "CDA", "C001")
	require.NoError(t, err)
	assert.Equal(t, 42.0, first)
	assert.Equal(t, 1, strategy.calls)

	// A broken strategy under the same name must not be consulted for a cached pair.
	p.strategy = &countingStrategy{name: MethodHaversine, err: errors.New("strategy removed")}

	second, err := p.Distance(ctx, "CDA", "C001")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCachedDistanceProviderKeysAreDirectionalAndScoped(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryDistanceCache()
	strategy := &countingStrategy{name: MethodHaversine, km: 7}

	p, err := NewCachedDistanceProvider(testRegistry(t), strategy, c, nil)
	require.NoError(t, err)

	_, err = p.Distance(ctx, "CDA", "C001")
	require.NoError(t, err)
	_, err = p.Distance(ctx, "C001", "CDA")
	require.NoError(t, err)
	assert.Equal(t, 2, strategy.calls)

	other := &countingStrategy{name: MethodGeodesic, km: 8}
	p2, err := NewCachedDistanceProvider(testRegistry(t), other, c, nil)
	require.NoError(t, err)

	km, err := p2.Distance(ctx, "CDA", "C001")
	require.NoError(t, err)
	assert.Equal(t, 8.0, km)
	assert.Equal(t, 1, other.calls)

	assert.Equal(t, 3, c.Len())
	_, ok := c.Get(cache.Key("CDA", "C001", MethodGeodesic))
	assert.True(t, ok)
}

func TestCachedDistanceProviderUsesPersistedEntries(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryDistanceCache()
	c.Put(cache.Key("C999", "CDA", MethodHaversine), 3.5)

	strategy := &countingStrategy{name: MethodHaversine}
	p, err := NewCachedDistanceProvider(testRegistry(t), strategy, c, nil)
	require.NoError(t, err)

	km, err := p.Distance(ctx, "C999", "CDA")
	require.NoError(t, err)
	assert.Equal(t, 3.5, km)
	assert.Equal(t, 0, strategy.calls)
}

func TestCachedDistanceProviderErrors(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryDistanceCache()

	t.Run("unknown location", func(t *testing.T) {
		p, err := NewCachedDistanceProvider(testRegistry(t), &countingStrategy{name: "x"}, c, nil)
		require.NoError(t, err)

		_, err = p.Distance(ctx, "CDA", "C404")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnknownLocation))
	})

	t.Run("strategy failure is not cached", func(t *testing.T) {
		s := &countingStrategy{name: "y", err: errors.New("boom")}
		p, err := NewCachedDistanceProvider(testRegistry(t), s, c, nil)
		require.NoError(t, err)

		_, err = p.Distance(ctx, "CDA", "C002")
		require.ErrorContains(t, err, "boom")
		_, ok := c.Get(cache.Key("CDA", "C002", "y"))
		assert.False(t, ok)
	})

	t.Run("negative distance rejected", func(t *testing.T) {
		p, err := NewCachedDistanceProvider(testRegistry(t), &countingStrategy{name: "z", km: -1}, c, nil)
		require.NoError(t, err)

		_, err = p.Distance(ctx, "CDA", "C002")
		require.Error(t, err)
	})

	t.Run("missing collaborators", func(t *testing.T) {
		_, err := NewCachedDistanceProvider(nil, Haversine{}, c, nil)
		require.Error(t, err)
		_, err = NewCachedDistanceProvider(testRegistry(t), nil, c, nil)
		require.Error(t, err)
		_, err = NewCachedDistanceProvider(testRegistry(t), Haversine{}, nil, nil)
		require.Error(t, err)
	})
}

func TestCachedDistanceProviderPersist(t *testing.T) {
	ctx := context.Background()
	store := cache.NewJSONFileStore(t.TempDir() + "/distance_cache.json")

	c, err := cache.NewDistanceCache(ctx, store, zap.NewNop())
	require.NoError(t, err)

	p, err := NewCachedDistanceProvider(testRegistry(t), Haversine{}, c, nil)
	require.NoError(t, err)

	want, err := p.Distance(ctx, "1", "C002")
	require.NoError(t, err)
	require.NoError(t, p.Persist(ctx))

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"1_C002_haversine": want}, saved)
}
