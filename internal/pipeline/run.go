// Package pipeline provides the high-level orchestration for a full dining
// refresh: fetch the raw payload, validate its shape, normalize every
// location in parallel, and hand the results to storage and output.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campbell/tigerdine/internal/locations"
	"github.com/campbell/tigerdine/internal/schemas"
	"github.com/campbell/tigerdine/internal/types"
)

// maxConcurrentLocations bounds the normalization fan-out. Records do not
// interact, so the limit only caps goroutine count.
const maxConcurrentLocations = 8

// PayloadFetcher supplies the raw locations payload. Satisfied by
// fetch.Client; tests inject their own.
type PayloadFetcher interface {
	AllLocations(ctx context.Context, date time.Time) ([]byte, error)
}

// RunOptions holds configuration for one refresh pass.
type RunOptions struct {
	Date    time.Time
	Now     time.Time
	IDMap   locations.IDMap
	Verbose bool
}

// Result is the outcome of one refresh pass.
type Result struct {
	Records []types.DiningLocation
}

// Run fetches, validates, and normalizes the full set of dining locations
// for opts.Date.
func Run(ctx context.Context, fetcher PayloadFetcher, opts RunOptions) (*Result, error) {
	payload, err := fetcher.AllLocations(ctx, opts.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations payload: %w", err)
	}

	if err := schemas.ValidateLocations(payload); err != nil {
		return nil, fmt.Errorf("locations payload failed validation: %w", err)
	}

	var raw types.RawLocationList
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode locations payload: %w", err)
	}

	return Normalize(ctx, raw.Locations, opts)
}

// Normalize builds the normalized record for every raw location in parallel.
// The output order matches the input order regardless of scheduling.
func Normalize(ctx context.Context, raws []types.RawLocation, opts RunOptions) (*Result, error) {
	ids := opts.IDMap
	if ids == nil {
		ids = locations.DefaultIDMap
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	date := opts.Date
	if date.IsZero() {
		date = now
	}

	records := make([]types.DiningLocation, len(raws))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLocations)
	for i := range raws {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if opts.Verbose {
				log.Printf("[NORMALIZE] %s", raws[i].Name)
			}
			records[i] = locations.BuildRecord(&raws[i], date, now, ids)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{Records: records}, nil
}
