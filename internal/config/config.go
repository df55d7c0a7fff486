package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Data     DataConfig
	Distance DistanceConfig
	OSRM     OSRMConfig
	Log      LogConfig
}

// Paths of the tabular inputs.
type DataConfig struct {
	VehiclesPath string
	ClientsPath  string
	DepotsPath   string
	SolutionPath string
}

type DistanceConfig struct {
	Method string
	// File path or backend URL of the persisted distance cache.
	Cache string
}

type OSRMConfig struct {
	BaseURL   string
	Profile   string
	Timeout   time.Duration
	RateLimit float64
}

type LogConfig struct {
	Level string
}

var defaults = map[string]any{
	"VEHICLES_PATH":   "datos/caso_1/vehicles.csv",
	"CLIENTS_PATH":    "datos/caso_1/clients.csv",
	"DEPOTS_PATH":     "datos/caso_1/depots.csv",
	"SOLUTION_PATH":   "solution.csv",
	"DISTANCE_METHOD": "haversine",
	"DISTANCE_CACHE":  "distance_cache.json",
	"OSRM_BASE_URL":   "http://router.project-osrm.org",
	"OSRM_PROFILE":    "driving",
	"OSRM_TIMEOUT":    "10s",
	"OSRM_RATE_LIMIT": 1.0,
	"LOG_LEVEL":       "info",
}

// Load reads .env (when present) into the environment, then the environment into a Config.
// Variables already set in the environment win over .env entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load config: read .env: %w", err)
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	cfg := &Config{
		Data: DataConfig{
			VehiclesPath: v.GetString("VEHICLES_PATH"),
			ClientsPath:  v.GetString("CLIENTS_PATH"),
			DepotsPath:   v.GetString("DEPOTS_PATH"),
			SolutionPath: v.GetString("SOLUTION_PATH"),
		},
		Distance: DistanceConfig{
			Method: v.GetString("DISTANCE_METHOD"),
			Cache:  v.GetString("DISTANCE_CACHE"),
		},
		OSRM: OSRMConfig{
			BaseURL:   v.GetString("OSRM_BASE_URL"),
			Profile:   v.GetString("OSRM_PROFILE"),
			Timeout:   v.GetDuration("OSRM_TIMEOUT"),
			RateLimit: v.GetFloat64("OSRM_RATE_LIMIT"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if cfg.OSRM.Timeout <= 0 {
		return nil, fmt.Errorf("load config: OSRM_TIMEOUT must be positive, got %q", v.GetString("OSRM_TIMEOUT"))
	}
	if cfg.OSRM.RateLimit < 0 {
		return nil, fmt.Errorf("load config: OSRM_RATE_LIMIT must not be negative, got %v", cfg.OSRM.RateLimit)
	}

	return cfg, nil
}
