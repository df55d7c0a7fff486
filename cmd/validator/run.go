package main

import (
	"context"
	"fmt"
	"io"
	"route-validator/internal/adapters/cache"
	"route-validator/internal/adapters/distance"
	"route-validator/internal/adapters/repositories"
	"route-validator/internal/domain"
	"route-validator/internal/platform/logger"
	"route-validator/internal/platform/obs"
	"route-validator/internal/ports"
	"route-validator/internal/report"
	"route-validator/internal/services"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func run(ctx context.Context, opts *options, out io.Writer) error {
	cfg := opts.cfg
	rep := report.New(out, opts.verbose)
	rep.Banner(cfg.Distance.Method)

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		rep.Failure(err)
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := validate(ctx, opts, rep, log); err != nil {
		log.Error("validation aborted", zap.Error(err))
		rep.Failure(err)
		return err
	}

	return nil
}

func validate(ctx context.Context, opts *options, rep *report.Reporter, log *zap.Logger) error {
	cfg := opts.cfg

	runID := uuid.NewString()
	ctx = obs.WithRunID(ctx, runID)
	log = log.With(zap.String("run_id", runID))

	strategy, err := distance.NewStrategy(cfg.Distance.Method, distance.Options{
		OSRMBaseURL:   cfg.OSRM.BaseURL,
		OSRMProfile:   cfg.OSRM.Profile,
		OSRMTimeout:   cfg.OSRM.Timeout,
		OSRMRateLimit: cfg.OSRM.RateLimit,
		Logger:        log,
	})
	if err != nil {
		return err
	}

	var repo ports.DatasetRepository = repositories.NewCSVDatasetRepository(repositories.CSVPaths{
		Vehicles: cfg.Data.VehiclesPath,
		Clients:  cfg.Data.ClientsPath,
		Depots:   cfg.Data.DepotsPath,
		Solution: cfg.Data.SolutionPath,
	}, log)

	ds, err := repo.LoadDataset(ctx)
	if err != nil {
		return err
	}

	registry, err := domain.NewRegistry(ds.Depots, ds.Clients)
	if err != nil {
		return err
	}

	store, closeStore, err := cache.OpenStore(ctx, cfg.Distance.Cache)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("close distance store", zap.Error(err))
		}
	}()

	distanceCache, err := cache.NewDistanceCache(ctx, store, log)
	if err != nil {
		return err
	}

	provider, err := distance.NewCachedDistanceProvider(registry, strategy, distanceCache, log)
	if err != nil {
		return err
	}

	validator, err := services.NewSolutionValidator(registry, ds.Vehicles, provider, log)
	if err != nil {
		return err
	}

	result, err := validator.Validate(ctx, ds.Routes)
	if result != nil {
		rep.Result(result)
	}
	if err != nil {
		return fmt.Errorf("save distance cache: %w", err)
	}

	log.Debug("distance cache size", zap.Int("entries", distanceCache.Len()))
	return nil
}
