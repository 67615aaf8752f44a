package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/campbell/tigerdine/internal/menus"
	"github.com/campbell/tigerdine/internal/types"
)

var menuCmd = &cobra.Command{
	Use:   "menu <location-id>",
	Short: "Fetch today's FD MealPlanner menu for a location",
	Long:  "Look the location up in the TigerCenter to FD MealPlanner ID map, fetch today's menu, and print the normalized item list.",
	Args:  cobra.ExactArgs(1),
	RunE:  runMenu,
}

var menuMealPeriod int

func init() {
	menuCmd.Flags().IntVar(&menuMealPeriod, "meal-period", 1, "FD MealPlanner meal period ID")

	rootCmd.AddCommand(menuCmd)
}

func runMenu(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	locationID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid location id %q", args[0])
	}

	ids, err := loadIDMap(cfg)
	if err != nil {
		return err
	}
	fdmp := ids.Lookup(locationID)
	if fdmp == nil {
		return fmt.Errorf("location %d has no FD MealPlanner mapping", locationID)
	}

	ctx := context.Background()

	payload, err := newClient(cfg).Menu(ctx, time.Now(), fdmp.LocationID, fdmp.AccountID, menuMealPeriod)
	if err != nil {
		return err
	}

	var resp types.RawMenuResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return fmt.Errorf("failed to decode menu payload: %w", err)
	}

	items := menus.Parse(&resp)
	return json.NewEncoder(os.Stdout).Encode(items)
}
