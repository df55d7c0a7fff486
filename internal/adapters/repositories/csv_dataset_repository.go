package repositories

import (
	"context"
	"fmt"
	"route-validator/internal/domain"
	"route-validator/internal/platform/obs"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Locations of the four tabular inputs.
type CSVPaths struct {
	Vehicles string
	Clients  string
	Depots   string
	Solution string
}

// CSV-backed implementation of the DatasetRepository port.
// TotalDistance, TotalTime and FuelCost solution columns are read past and ignored.
type CSVDatasetRepository struct {
	Paths    CSVPaths
	validate *validator.Validate
	logger   *zap.Logger
}

func NewCSVDatasetRepository(paths CSVPaths, logger *zap.Logger) *CSVDatasetRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVDatasetRepository{Paths: paths, validate: validator.New(), logger: logger}
}

// Load every input file; any unreadable or invalid row fails the whole load.
func (r *CSVDatasetRepository) LoadDataset(ctx context.Context) (_ *domain.Dataset, err error) {
	defer obs.Time(ctx, r.logger, "dataset.Load")(&err)

	vehicles, err := r.LoadVehicles()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	clients, err := r.LoadClients()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	depots, err := r.LoadDepots()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	routes, err := r.LoadRoutes()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	r.logger.Info("dataset loaded",
		zap.Int("vehicles", len(vehicles)),
		zap.Int("clients", len(clients)),
		zap.Int("depots", len(depots)),
		zap.Int("routes", len(routes)),
	)

	return &domain.Dataset{
		Vehicles: vehicles,
		Depots:   depots,
		Clients:  clients,
		Routes:   routes,
	}, nil
}

func (r *CSVDatasetRepository) LoadVehicles() ([]domain.VehicleSpec, error) {
	t, err := readTable(r.Paths.Vehicles, "VehicleID", "Capacity", "Range")
	if err != nil {
		return nil, fmt.Errorf("load vehicles: %w", err)
	}

	out := make([]domain.VehicleSpec, 0, len(t.rows))
	for i := range t.rows {
		var v domain.VehicleSpec
		if v.VehicleID, err = t.int(i, "VehicleID"); err != nil {
			return nil, fmt.Errorf("load vehicles: %w", err)
		}
		if v.Capacity, err = t.int(i, "Capacity"); err != nil {
			return nil, fmt.Errorf("load vehicles: %w", err)
		}
		if v.Range, err = t.float(i, "Range"); err != nil {
			return nil, fmt.Errorf("load vehicles: %w", err)
		}

		if err := r.validate.Struct(v); err != nil {
			return nil, fmt.Errorf("load vehicles: vehicle %d: %w", v.VehicleID, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func (r *CSVDatasetRepository) LoadClients() ([]domain.ClientRecord, error) {
	t, err := readTable(r.Paths.Clients, "ClientID", "Demand", "Latitude", "Longitude")
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}

	out := make([]domain.ClientRecord, 0, len(t.rows))
	for i := range t.rows {
		var c domain.ClientRecord
		if c.ClientID, err = t.int(i, "ClientID"); err != nil {
			return nil, fmt.Errorf("load clients: %w", err)
		}
		if c.Demand, err = t.int(i, "Demand"); err != nil {
			return nil, fmt.Errorf("load clients: %w", err)
		}
		if c.Coords, err = coordinates(t, i); err != nil {
			return nil, fmt.Errorf("load clients: %w", err)
		}

		if err := r.validate.Struct(c); err != nil {
			return nil, fmt.Errorf("load clients: client %d: %w", c.ClientID, err)
		}
		out = append(out, c)
	}

	return out, nil
}

func (r *CSVDatasetRepository) LoadDepots() ([]domain.DepotRecord, error) {
	t, err := readTable(r.Paths.Depots, "DepotID", "Latitude", "Longitude")
	if err != nil {
		return nil, fmt.Errorf("load depots: %w", err)
	}

	out := make([]domain.DepotRecord, 0, len(t.rows))
	for i := range t.rows {
		var d domain.DepotRecord
		if d.DepotID, err = t.int(i, "DepotID"); err != nil {
			return nil, fmt.Errorf("load depots: %w", err)
		}
		if d.Coords, err = coordinates(t, i); err != nil {
			return nil, fmt.Errorf("load depots: %w", err)
		}

		if err := r.validate.Struct(d); err != nil {
			return nil, fmt.Errorf("load depots: depot %d: %w", d.DepotID, err)
		}
		out = append(out, d)
	}

	return out, nil
}

func (r *CSVDatasetRepository) LoadRoutes() ([]domain.Route, error) {
	t, err := readTable(r.Paths.Solution,
		"VehicleId", "DepotId", "InitialLoad", "RouteSequence", "ClientsServed", "DemandsSatisfied",
	)
	if err != nil {
		return nil, fmt.Errorf("load solution: %w", err)
	}

	out := make([]domain.Route, 0, len(t.rows))
	for i := range t.rows {
		var rt domain.Route

		if rt.VehicleLabel, err = t.str(i, "VehicleId"); err != nil {
			return nil, fmt.Errorf("load solution: %w", err)
		}
		if rt.VehicleID, err = domain.ParseVehicleLabel(rt.VehicleLabel); err != nil {
			return nil, fmt.Errorf("load solution: row %d: %w", i+2, err)
		}
		if rt.DepotID, err = t.str(i, "DepotId"); err != nil {
			return nil, fmt.Errorf("load solution: %w", err)
		}
		if rt.InitialLoad, err = t.int(i, "InitialLoad"); err != nil {
			return nil, fmt.Errorf("load solution: %w", err)
		}
		if rt.ClientsServed, err = t.int(i, "ClientsServed"); err != nil {
			return nil, fmt.Errorf("load solution: %w", err)
		}

		seq, err := t.str(i, "RouteSequence")
		if err != nil {
			return nil, fmt.Errorf("load solution: %w", err)
		}
		rt.Sequence = splitList(seq)

		demands, err := t.str(i, "DemandsSatisfied")
		if err != nil {
			return nil, fmt.Errorf("load solution: %w", err)
		}
		for _, d := range splitList(demands) {
			n, err := parseInt(d)
			if err != nil {
				return nil, fmt.Errorf("load solution: row %d: DemandsSatisfied: %w", i+2, err)
			}
			rt.Demands = append(rt.Demands, n)
		}

		out = append(out, rt)
	}

	return out, nil
}

func coordinates(t *csvTable, i int) (domain.Coordinates, error) {
	lat, err := t.float(i, "Latitude")
	if err != nil {
		return domain.Coordinates{}, err
	}
	lon, err := t.float(i, "Longitude")
	if err != nil {
		return domain.Coordinates{}, err
	}
	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
