package fetch

import (
	"context"
	"fmt"
	"time"
)

// Upstream endpoints. The base URLs are configurable so tests can point at a
// local server; these are the production defaults.
const (
	DefaultTigerCenterBase = "https://tigercenter.rit.edu/tigerCenterApi/tc"
	DefaultFoodTruckURL    = "https://www.rit.edu/events/weekend-food-trucks"
	DefaultFDMPBase        = "https://dining.rit.edu/fdmp"
	DefaultOccupancyBase   = "https://maps.rit.edu/proxySearch"
)

// apiDateFormat is the date format the TigerCenter API expects.
const apiDateFormat = "2006-01-02"

// Client fetches the upstream dining payloads.
type Client struct {
	TigerCenterBase string
	FoodTruckURL    string
	FDMPBase        string
	OccupancyBase   string
	Options         *Options
	// UseBrowser enables the headless-browser fallback for pages that only
	// render their content with JavaScript.
	UseBrowser bool
	Verbose    bool
}

// NewClient returns a Client pointed at the production endpoints.
func NewClient() *Client {
	return &Client{
		TigerCenterBase: DefaultTigerCenterBase,
		FoodTruckURL:    DefaultFoodTruckURL,
		FDMPBase:        DefaultFDMPBase,
		OccupancyBase:   DefaultOccupancyBase,
		Options:         DefaultOptions(),
	}
}

// AllLocations fetches the raw dining payload for every location on the
// given date.
func (c *Client) AllLocations(ctx context.Context, date time.Time) ([]byte, error) {
	u := fmt.Sprintf("%s/dining-all?date=%s", c.TigerCenterBase, date.Format(apiDateFormat))
	result, err := URL(ctx, u, c.Options)
	if err != nil {
		return nil, err
	}
	return []byte(result.Body), nil
}

// SingleLocation fetches the raw payload for one location on the given date.
func (c *Client) SingleLocation(ctx context.Context, date time.Time, locationID int) ([]byte, error) {
	u := fmt.Sprintf("%s/dining-single?date=%s&locId=%d", c.TigerCenterBase, date.Format(apiDateFormat), locationID)
	result, err := URL(ctx, u, c.Options)
	if err != nil {
		return nil, err
	}
	return []byte(result.Body), nil
}

// FoodTruckPage fetches the weekend food-trucks page HTML. If the plain
// fetch comes back without meaningful text and the browser fallback is
// enabled, the page is re-fetched through a headless browser.
func (c *Client) FoodTruckPage(ctx context.Context) (string, error) {
	result, err := URL(ctx, c.FoodTruckURL, c.Options)
	if err != nil {
		return "", err
	}

	if c.UseBrowser {
		text, textErr := VisibleText(result.Body)
		if textErr == nil && ShouldUseBrowser(text) {
			rendered, browserErr := WithBrowser(ctx, c.FoodTruckURL, c.Options.Timeout, c.Verbose)
			if browserErr == nil {
				return rendered, nil
			}
		}
	}

	return result.Body, nil
}

// Occupancy fetches the maps.rit.edu density payload for a location's MDO
// ID. The MDO ID comes from the dining payload, not the location ID.
func (c *Client) Occupancy(ctx context.Context, mdoID int) ([]byte, error) {
	u := fmt.Sprintf("%s/densityMapDetail.php?mdo=%d", c.OccupancyBase, mdoID)
	result, err := URL(ctx, u, c.Options)
	if err != nil {
		return nil, err
	}
	return []byte(result.Body), nil
}

// Menu fetches one day's FD MealPlanner menu for a location and meal period.
func (c *Client) Menu(ctx context.Context, date time.Time, locationID, accountID, mealPeriodID int) ([]byte, error) {
	u := fmt.Sprintf("%s/meals?date=%s&locationId=%d&accountId=%d&mealPeriodId=%d",
		c.FDMPBase, date.Format(apiDateFormat), locationID, accountID, mealPeriodID)
	result, err := URL(ctx, u, c.Options)
	if err != nil {
		return nil, err
	}
	return []byte(result.Body), nil
}
