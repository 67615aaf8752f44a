package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/campbell/tigerdine/internal/config"
	"github.com/campbell/tigerdine/internal/db"
	"github.com/campbell/tigerdine/internal/fetch"
	"github.com/campbell/tigerdine/internal/locations"
)

// newClient builds a fetch client from the merged configuration.
func newClient(cfg *config.Config) *fetch.Client {
	client := fetch.NewClient()
	if cfg.TigerCenterBase != "" {
		client.TigerCenterBase = cfg.TigerCenterBase
	}
	if cfg.FoodTruckURL != "" {
		client.FoodTruckURL = cfg.FoodTruckURL
	}
	if cfg.FDMPBase != "" {
		client.FDMPBase = cfg.FDMPBase
	}
	if cfg.OccupancyBase != "" {
		client.OccupancyBase = cfg.OccupancyBase
	}
	if cfg.TimeoutSeconds > 0 {
		client.Options.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client.UseBrowser = cfg.UseBrowser
	client.Verbose = cfg.Verbose
	return client
}

// openStore connects to the snapshot database when one is configured.
// Returns nil without error when no database URL is set.
func openStore(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// loadIDMap reads an ID-map override file, falling back to the built-in map.
func loadIDMap(cfg *config.Config) (locations.IDMap, error) {
	if cfg.IDMapPath == "" {
		return locations.DefaultIDMap, nil
	}
	data, err := os.ReadFile(cfg.IDMapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read id map: %w", err)
	}
	var ids locations.IDMap
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to parse id map: %w", err)
	}
	return ids, nil
}
