package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/campbell/tigerdine/internal/locations"
	"github.com/campbell/tigerdine/internal/schemas"
	"github.com/campbell/tigerdine/internal/types"
)

var occupancyCmd = &cobra.Command{
	Use:   "occupancy <location-id>",
	Short: "Show how full a location currently is",
	Long:  "Look up the location's MDO ID in today's dining payload, fetch the campus density data for it, and print the occupancy percentage.",
	Args:  cobra.ExactArgs(1),
	RunE:  runOccupancy,
}

func init() {
	rootCmd.AddCommand(occupancyCmd)
}

func runOccupancy(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	locationID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid location id %q", args[0])
	}

	ctx := context.Background()
	client := newClient(cfg)

	payload, err := client.AllLocations(ctx, time.Now())
	if err != nil {
		return err
	}
	if err := schemas.ValidateLocations(payload); err != nil {
		return err
	}

	var raw types.RawLocationList
	if err := json.Unmarshal(payload, &raw); err != nil {
		return fmt.Errorf("failed to decode locations payload: %w", err)
	}

	for _, loc := range raw.Locations {
		if loc.ID != locationID {
			continue
		}
		density, err := client.Occupancy(ctx, loc.MdoID)
		if err != nil {
			return err
		}
		percent, err := locations.OccupancyPercent(density)
		if err != nil {
			return err
		}
		fmt.Printf("%s is at %.0f%% occupancy\n", loc.Name, percent)
		return nil
	}

	return fmt.Errorf("location %d not found in payload", locationID)
}
