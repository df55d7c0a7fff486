package services

import (
	"context"
	"errors"
	"fmt"
	"route-validator/internal/domain"
	"route-validator/internal/platform/obs"
	"route-validator/internal/ports"

	"go.uber.org/zap"
)

// SolutionValidator checks candidate routes against the fleet and the location registry.
type SolutionValidator struct {
	registry *domain.Registry
	vehicles map[int]domain.VehicleSpec
	provider ports.DistanceProvider
	logger   *zap.Logger
}

func NewSolutionValidator(
	registry *domain.Registry,
	vehicles []domain.VehicleSpec,
	provider ports.DistanceProvider,
	logger *zap.Logger,
) (*SolutionValidator, error) {
	if registry == nil {
		return nil, errors.New("solution validator: registry is nil")
	}
	if provider == nil {
		return nil, errors.New("solution validator: distance provider is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fleet := make(map[int]domain.VehicleSpec, len(vehicles))
	for _, v := range vehicles {
		if _, ok := fleet[v.VehicleID]; ok {
			return nil, fmt.Errorf("solution validator: duplicate vehicle id %d", v.VehicleID)
		}
		fleet[v.VehicleID] = v
	}

	return &SolutionValidator{
		registry: registry,
		vehicles: fleet,
		provider: provider,
		logger:   logger,
	}, nil
}

// validationPass owns the state accumulated across the routes of one Validate call.
type validationPass struct {
	ctx     context.Context
	v       *SolutionValidator
	visited map[string]struct{}
	errs    []string
}

func (p *validationPass) addf(format string, args ...any) {
	p.errs = append(p.errs, fmt.Sprintf(format, args...))
}

// Validate runs every route check in input order, then the global coverage check.
//
// Rule violations never stop the pass; they are collected into the result in
// discovery order. The provider's cache is persisted exactly once at the end,
// whatever the outcome. A persistence failure is returned together with the
// complete result.
func (v *SolutionValidator) Validate(ctx context.Context, routes []domain.Route) (_ *domain.ValidationResult, err error) {
	defer obs.Time(ctx, v.logger, "validate.Solution")(&err)

	p := &validationPass{
		ctx:     ctx,
		v:       v,
		visited: make(map[string]struct{}),
	}

	for _, rt := range routes {
		before := len(p.errs)
		p.checkRoute(rt)

		v.logger.Debug("route checked",
			zap.String("route", rt.VehicleLabel),
			zap.Int("stops", len(rt.Sequence)),
			zap.Int("errors", len(p.errs)-before),
		)
	}

	p.checkCoverage()

	result := domain.NewValidationResult(p.errs)
	v.logger.Info("validation finished",
		zap.Int("routes", len(routes)),
		zap.Bool("feasible", result.Feasible()),
		zap.Int("errors", len(p.errs)),
	)

	if err := v.provider.Persist(ctx); err != nil {
		return result, fmt.Errorf("validate solution: %w", err)
	}

	return result, nil
}
