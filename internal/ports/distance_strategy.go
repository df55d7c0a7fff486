package ports

import (
	"context"
	"route-validator/internal/domain"
)

// One interchangeable way of turning a coordinate pair into kilometers.
type DistanceStrategy interface {
	// Name scopes cache entries; it must be stable across runs.
	Name() string
	Compute(ctx context.Context, from domain.Coordinates, to domain.Coordinates) (float64, error)
}
