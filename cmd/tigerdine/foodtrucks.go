package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/campbell/tigerdine/internal/foodtruck"
	"github.com/campbell/tigerdine/internal/observability"
)

var foodtrucksCmd = &cobra.Command{
	Use:   "foodtrucks",
	Short: "Scrape the weekend food-trucks page",
	Long:  "Fetch the RIT weekend food-trucks events page and extract upcoming events: date, time range, lot, and the trucks attending.",
	RunE:  runFoodtrucks,
}

var foodtrucksJSON bool

func init() {
	foodtrucksCmd.Flags().BoolVar(&foodtrucksJSON, "json", false, "Emit raw JSON instead of formatted output")

	rootCmd.AddCommand(foodtrucksCmd)
}

func runFoodtrucks(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()

	html, err := newClient(cfg).FoodTruckPage(ctx)
	if err != nil {
		return err
	}

	events, err := foodtruck.Scrape(html, time.Now())
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		if _, err := store.SaveFoodTruckScrape(ctx, events); err != nil {
			return err
		}
	}

	if foodtrucksJSON {
		return json.NewEncoder(os.Stdout).Encode(events)
	}

	observability.NewPrinter(os.Stdout).PrintFoodTruckEvents(events)
	return nil
}
