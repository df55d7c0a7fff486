package distance

import (
	"context"
	"math"
	"route-validator/internal/domain"
)

const earthRadiusKm = 6371.0

// Haversine is the great-circle strategy on a sphere of radius 6371 km.
type Haversine struct{}

func (Haversine) Name() string { return MethodHaversine }

func (Haversine) Compute(_ context.Context, from, to domain.Coordinates) (float64, error) {
	return haversineKm(from, to), nil
}

func haversineKm(from, to domain.Coordinates) float64 {
	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (to.Lon - from.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Guard against rounding above 1 near antipodal points.
	a = math.Min(1, a)

	return earthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}
