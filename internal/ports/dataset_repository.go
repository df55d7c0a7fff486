package ports

import (
	"context"
	"route-validator/internal/domain"
)

// Port: a boundary for retrieving the fleet, locations and candidate solution.
type DatasetRepository interface {
	LoadDataset(ctx context.Context) (*domain.Dataset, error)
}
