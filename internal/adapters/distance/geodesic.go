package distance

import (
	"context"
	"route-validator/internal/domain"

	"github.com/tidwall/geodesic"
)

// Geodesic computes the ellipsoidal distance on WGS84 (Karney's inverse solution).
type Geodesic struct{}

func (Geodesic) Name() string { return MethodGeodesic }

func (Geodesic) Compute(_ context.Context, from, to domain.Coordinates) (float64, error) {
	var meters float64
	geodesic.WGS84.Inverse(from.Lat, from.Lon, to.Lat, to.Lon, &meters, nil, nil)
	return meters / 1000, nil
}
