package ports

import "context"

// Durable backing for the distance cache.
// Load returns the whole snapshot (an absent store is an empty snapshot);
// Save replaces the whole snapshot.
type DistanceStore interface {
	Load(ctx context.Context) (map[string]float64, error)
	Save(ctx context.Context, entries map[string]float64) error
}
