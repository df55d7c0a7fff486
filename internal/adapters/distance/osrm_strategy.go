package distance

import (
	"context"
	"net/http"
	"route-validator/internal/domain"
	"route-validator/internal/ports"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultOSRMBaseURL = "http://router.project-osrm.org"
	defaultOSRMProfile = "driving"
	defaultOSRMTimeout = 10 * time.Second
)

type OSRMConfig struct {
	BaseURL string
	Profile string
	// Timeout bounds each HTTP attempt; zero means defaultOSRMTimeout.
	Timeout time.Duration
	// RateLimit is requests per second; zero or less disables pacing.
	RateLimit float64
}

// OSRMStrategy asks an OSRM routing service for the driving distance between two points.
//
// Any failure (transport error, non-success status, malformed or empty response)
// is logged and answered with the great-circle distance for the same pair, so an
// unreachable service never aborts validation.
type OSRMStrategy struct {
	session  *http.Client
	baseURL  string
	profile  string
	limiter  *rate.Limiter
	fallback ports.DistanceStrategy
	logger   *zap.Logger
}

func NewOSRMStrategy(cfg OSRMConfig, logger *zap.Logger) *OSRMStrategy {
	if logger == nil {
		logger = zap.NewNop()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultOSRMBaseURL
	}

	profile := strings.TrimSpace(cfg.Profile)
	if profile == "" {
		profile = defaultOSRMProfile
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultOSRMTimeout
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &OSRMStrategy{
		session:  &http.Client{Timeout: timeout},
		baseURL:  baseURL,
		profile:  profile,
		limiter:  limiter,
		fallback: Haversine{},
		logger:   logger,
	}
}

func (o *OSRMStrategy) Name() string { return MethodOSRM }

func (o *OSRMStrategy) Compute(ctx context.Context, from, to domain.Coordinates) (float64, error) {
	km, err := o.fetchRouteKm(ctx, from, to)
	if err == nil {
		return km, nil
	}

	o.logger.Warn("osrm route failed, falling back to haversine",
		zap.Float64s("from", from.CoordsToList()),
		zap.Float64s("to", to.CoordsToList()),
		zap.Error(err),
	)

	return o.fallback.Compute(ctx, from, to)
}
