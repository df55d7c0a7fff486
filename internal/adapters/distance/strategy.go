package distance

import (
	"errors"
	"fmt"
	"route-validator/internal/ports"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	MethodHaversine = "haversine"
	MethodGeodesic  = "geodesic"
	MethodOSRM      = "osrm"
)

// Older cache files and scripts name the geodesic strategy after the library they used.
var methodAliases = map[string]string{
	"geopy": MethodGeodesic,
}

var ErrUnknownMethod = errors.New("unknown distance method")

// Methods lists the accepted strategy names, default first.
func Methods() []string {
	return []string{MethodHaversine, MethodGeodesic, MethodOSRM}
}

// Options configure the strategies that need more than coordinates.
type Options struct {
	OSRMBaseURL   string
	OSRMProfile   string
	OSRMTimeout   time.Duration
	OSRMRateLimit float64
	Logger        *zap.Logger
}

// NewStrategy selects the distance strategy once, by name.
func NewStrategy(method string, opts Options) (ports.DistanceStrategy, error) {
	name := strings.ToLower(strings.TrimSpace(method))
	if canonical, ok := methodAliases[name]; ok {
		name = canonical
	}

	switch name {
	case MethodHaversine:
		return Haversine{}, nil
	case MethodGeodesic:
		return Geodesic{}, nil
	case MethodOSRM:
		return NewOSRMStrategy(OSRMConfig{
			BaseURL:   opts.OSRMBaseURL,
			Profile:   opts.OSRMProfile,
			Timeout:   opts.OSRMTimeout,
			RateLimit: opts.OSRMRateLimit,
		}, opts.Logger), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownMethod, method, strings.Join(Methods(), ", "))
	}
}
