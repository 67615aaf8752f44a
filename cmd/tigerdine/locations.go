package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/campbell/tigerdine/internal/observability"
	"github.com/campbell/tigerdine/internal/pipeline"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Fetch and normalize all dining locations for a date",
	Long:  "Fetch the TigerCenter dining payload, validate it, and print every location's normalized hours, open status, visiting vendors, and daily specials. With a database configured, each record is also stored as a snapshot.",
	RunE:  runLocations,
}

var (
	locationsDate string
	locationsJSON bool
)

func init() {
	locationsCmd.Flags().StringVar(&locationsDate, "date", "", "Target date (YYYY-MM-DD, default today)")
	locationsCmd.Flags().BoolVar(&locationsJSON, "json", false, "Emit raw JSON instead of formatted output")

	rootCmd.AddCommand(locationsCmd)
}

func runLocations(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	date := time.Now()
	if locationsDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", locationsDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		date = parsed
	}

	ids, err := loadIDMap(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	result, err := pipeline.Run(ctx, newClient(cfg), pipeline.RunOptions{
		Date:    date,
		Now:     time.Now(),
		IDMap:   ids,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}

	if store != nil {
		for i := range result.Records {
			if _, err := store.SaveLocationSnapshot(ctx, &result.Records[i]); err != nil {
				return err
			}
		}
	}

	if locationsJSON {
		return json.NewEncoder(os.Stdout).Encode(result.Records)
	}

	printer := observability.NewPrinter(os.Stdout)
	for i := range result.Records {
		printer.PrintLocation(&result.Records[i])
	}
	return nil
}
