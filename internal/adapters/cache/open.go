package cache

import (
	"context"
	"fmt"
	"route-validator/internal/platform/db"
	"route-validator/internal/ports"
	"strings"

	"github.com/redis/go-redis/v9"
)

// OpenStore selects a persisted store from a cache location:
//
//	redis://host:6379/0              Redis hash
//	postgres://... / postgresql://   PostgreSQL table
//	sqlite://path, *.db, *.sqlite    SQLite table
//	anything else                    JSON file at that path
//
// The returned close func releases the underlying connection, if any.
func OpenStore(ctx context.Context, location string) (ports.DistanceStore, func() error, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, nil, fmt.Errorf("open distance store: location must not be empty")
	}

	noop := func() error { return nil }

	switch {
	case strings.HasPrefix(location, "redis://"), strings.HasPrefix(location, "rediss://"):
		opts, err := redis.ParseURL(location)
		if err != nil {
			return nil, nil, fmt.Errorf("open distance store: parse redis url: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("open distance store: connect to redis: %w", err)
		}
		store := NewRedisDistanceStore(client, "")
		return store, store.Close, nil

	case strings.HasPrefix(location, "postgres://"), strings.HasPrefix(location, "postgresql://"):
		conn, err := db.Open(location)
		if err != nil {
			return nil, nil, fmt.Errorf("open distance store: %w", err)
		}
		return NewPostgresDistanceStore(conn), conn.Close, nil

	case strings.HasPrefix(location, "sqlite://"),
		strings.HasSuffix(location, ".db"),
		strings.HasSuffix(location, ".sqlite"):
		path := strings.TrimPrefix(location, "sqlite://")
		conn, err := db.OpenSqlite(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open distance store: %w", err)
		}
		return NewSqliteDistanceStore(conn), conn.Close, nil

	default:
		return NewJSONFileStore(location), noop, nil
	}
}
