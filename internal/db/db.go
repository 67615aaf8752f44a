// Package db provides PostgreSQL storage for normalized dining snapshots.
// The parsing packages never touch it; it exists so downstream consumers can
// read the latest normalized state without refetching upstream.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campbell/tigerdine/internal/types"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the snapshot tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS location_snapshots (
			id UUID PRIMARY KEY,
			location_id INT NOT NULL,
			snapshot_date DATE NOT NULL,
			record JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS location_snapshots_loc_date
			ON location_snapshots (location_id, snapshot_date, created_at DESC);
		CREATE TABLE IF NOT EXISTS food_truck_scrapes (
			id UUID PRIMARY KEY,
			events JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveLocationSnapshot stores one normalized location record and returns the
// snapshot ID.
func (db *DB) SaveLocationSnapshot(ctx context.Context, rec *types.DiningLocation) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(rec)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO location_snapshots (id, location_id, snapshot_date, record)
		 VALUES ($1, $2, $3, $4)`,
		id, rec.ID, rec.Date, jsonBytes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save snapshot for location %d: %w", rec.ID, err)
	}
	return id, nil
}

// LatestLocationSnapshot returns the most recent snapshot for a location on
// a date, or nil when none exists.
func (db *DB) LatestLocationSnapshot(ctx context.Context, locationID int, date time.Time) (*types.DiningLocation, error) {
	var jsonBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT record FROM location_snapshots
		 WHERE location_id = $1 AND snapshot_date = $2
		 ORDER BY created_at DESC
		 LIMIT 1`,
		locationID, date,
	).Scan(&jsonBytes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot for location %d: %w", locationID, err)
	}

	var rec types.DiningLocation
	if err := json.Unmarshal(jsonBytes, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &rec, nil
}

// SaveFoodTruckScrape stores one scrape pass of food-truck events.
func (db *DB) SaveFoodTruckScrape(ctx context.Context, events []types.FoodTruckEvent) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(events)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal events: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO food_truck_scrapes (id, events) VALUES ($1, $2)`,
		id, jsonBytes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save food truck scrape: %w", err)
	}
	return id, nil
}
