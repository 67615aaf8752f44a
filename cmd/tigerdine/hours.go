package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/campbell/tigerdine/internal/locations"
	"github.com/campbell/tigerdine/internal/observability"
)

var hoursCmd = &cobra.Command{
	Use:   "hours <location-id>",
	Short: "Show a location's hours for the next week",
	Long:  "Fetch the dining payload for today and each of the following six days and print one location's normalized hours per day.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHours,
}

func init() {
	rootCmd.AddCommand(hoursCmd)
}

func runHours(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	locationID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid location id %q", args[0])
	}

	ctx := context.Background()

	sched, err := locations.WeekOfHours(ctx, newClient(cfg), locationID, time.Now(), 7)
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintWeeklyHours(sched.LocationName, sched.Days)
	return nil
}
