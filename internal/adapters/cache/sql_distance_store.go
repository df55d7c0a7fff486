package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type sqlDialect int

const (
	dialectSqlite sqlDialect = iota
	dialectPostgres
)

// SQLDistanceStore keeps the distance cache in a `distance_cache` table.
// The same type serves SQLite and PostgreSQL; only placeholders and column types differ.
type SQLDistanceStore struct {
	DB      *sql.DB
	dialect sqlDialect
}

func NewSqliteDistanceStore(db *sql.DB) *SQLDistanceStore {
	return &SQLDistanceStore{DB: db, dialect: dialectSqlite}
}

func NewPostgresDistanceStore(db *sql.DB) *SQLDistanceStore {
	return &SQLDistanceStore{DB: db, dialect: dialectPostgres}
}

// InitSchema creates the cache table if it does not exist.
func (s *SQLDistanceStore) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("init distance cache schema: db is nil")
	}

	createDistanceCacheQuery := `
	CREATE TABLE IF NOT EXISTS distance_cache (
        cache_key TEXT PRIMARY KEY,
        kilometers DOUBLE PRECISION NOT NULL
    );
	`
	if s.dialect == dialectSqlite {
		createDistanceCacheQuery = strings.Replace(createDistanceCacheQuery, "DOUBLE PRECISION", "REAL", 1)
	}

	if _, err := s.DB.ExecContext(ctx, createDistanceCacheQuery); err != nil {
		return fmt.Errorf("init distance cache schema: %w", err)
	}

	return nil
}

// Load reads every cached distance. A fresh database yields an empty snapshot.
func (s *SQLDistanceStore) Load(ctx context.Context) (map[string]float64, error) {
	if err := s.InitSchema(ctx); err != nil {
		return nil, fmt.Errorf("get distance cache: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT cache_key, kilometers
    FROM distance_cache;
	`)
	if err != nil {
		return nil, fmt.Errorf("get distance cache: query distance_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var key string
		var km float64
		if err := rows.Scan(&key, &km); err != nil {
			return nil, fmt.Errorf("get distance cache: scan rows: %w", err)
		}
		out[key] = km
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get distance cache: row iteration: %w", err)
	}

	return out, nil
}

// Save replaces the table contents with entries in a single transaction.
func (s *SQLDistanceStore) Save(ctx context.Context, entries map[string]float64) error {
	if err := s.InitSchema(ctx); err != nil {
		return fmt.Errorf("insert distance cache: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert distance cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM distance_cache;`); err != nil {
		return fmt.Errorf("insert distance cache: clear snapshot: %w", err)
	}

	insert := `INSERT INTO distance_cache (cache_key, kilometers) VALUES (?, ?);`
	if s.dialect == dialectPostgres {
		insert = `INSERT INTO distance_cache (cache_key, kilometers) VALUES ($1, $2);`
	}

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("insert distance cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, km := range entries {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("insert distance cache: empty cache key")
		}

		if _, err := stmt.ExecContext(ctx, key, km); err != nil {
			return fmt.Errorf("insert distance cache key=%q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert distance cache commit: %w", err)
	}

	return nil
}
