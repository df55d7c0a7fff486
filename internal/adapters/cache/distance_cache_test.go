package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingStore struct {
	loaded  map[string]float64
	loadErr error
	saves   []map[string]float64
	saveErr error
}

func (s *recordingStore) Load(ctx context.Context) (map[string]float64, error) {
	return s.loaded, s.loadErr
}

func (s *recordingStore) Save(ctx context.Context, entries map[string]float64) error {
	s.saves = append(s.saves, entries)
	return s.saveErr
}

func TestKeyIsDirectionalAndStrategyScoped(t *testing.T) {
	assert.Equal(t, "CDA_C001_haversine", Key("CDA", "C001", "haversine"))
	assert.NotEqual(t, Key("CDA", "C001", "haversine"), Key("C001", "CDA", "haversine"))
	assert.NotEqual(t, Key("CDA", "C001", "haversine"), Key("CDA", "C001", "osrm"))
}

func TestDistanceCacheSeedsFromStoreAndPersistsFullSnapshot(t *testing.T) {
	ctx := context.Background()
	store := &recordingStore{loaded: map[string]float64{"A_B_haversine": 1.5}}

	c, err := NewDistanceCache(ctx, store, zap.NewNop())
	require.NoError(t, err)

	v, ok := c.Get("A_B_haversine")
	require.True(t, ok)
	assert.Equal(t, 1.5, v)

	c.Put("B_A_haversine", 2.5)
	assert.Equal(t, 2, c.Len())

	require.NoError(t, c.Persist(ctx))
	require.Len(t, store.saves, 1)
	assert.Equal(t, map[string]float64{"A_B_haversine": 1.5, "B_A_haversine": 2.5}, store.saves[0])
}

func TestDistanceCacheNilSnapshotIsEmpty(t *testing.T) {
	c, err := NewDistanceCache(context.Background(), &recordingStore{}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	c.Put("k", 1)
	assert.Equal(t, 1, c.Len())
}

func TestDistanceCacheErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewDistanceCache(ctx, nil, zap.NewNop())
	require.Error(t, err)

	_, err = NewDistanceCache(ctx, &recordingStore{loadErr: errors.New("disk gone")}, zap.NewNop())
	require.ErrorContains(t, err, "disk gone")

	c, err := NewDistanceCache(ctx, &recordingStore{saveErr: errors.New("read-only")}, zap.NewNop())
	require.NoError(t, err)
	require.ErrorContains(t, c.Persist(ctx), "read-only")
}

func TestMemoryDistanceCachePersistIsNoop(t *testing.T) {
	c := NewMemoryDistanceCache()
	c.Put("k", 3)
	require.NoError(t, c.Persist(context.Background()))

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
}
