package ports

import "context"

// Contract for retrieving the travel distance between two location keys.
type DistanceProvider interface {
	// Return the distance in kilometers from origin to destination.
	Distance(ctx context.Context, origin string, destination string) (float64, error)
	// Write every distance known so far to durable storage.
	Persist(ctx context.Context) error
}
