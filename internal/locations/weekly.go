package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campbell/tigerdine/internal/schedule"
	"github.com/campbell/tigerdine/internal/schemas"
	"github.com/campbell/tigerdine/internal/types"
)

// DaySource fetches the raw dining payload for one date.
// fetch.Client satisfies it.
type DaySource interface {
	AllLocations(ctx context.Context, date time.Time) ([]byte, error)
}

// DayHours is one day of a location's upcoming schedule rendered as
// human-readable hour strings.
type DayHours struct {
	Day   string    `json:"day"`
	Date  time.Time `json:"date"`
	Times []string  `json:"times"`
}

// WeeklySchedule is a location's rendered hours for a run of days.
type WeeklySchedule struct {
	LocationName string
	Days         []DayHours
}

const hourFormat = "3:04 PM"

// WeekOfHours fetches the dining payload separately for start and the
// following days-1 dates and renders the location's open periods per day,
// with "Closed" standing in for days with no hours. Exceptions in a payload
// only apply to the date it was fetched for, so each day gets its own fetch.
func WeekOfHours(ctx context.Context, src DaySource, locationID int, start time.Time, days int) (*WeeklySchedule, error) {
	sched := &WeeklySchedule{Days: make([]DayHours, 0, days)}
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)

		payload, err := src.AllLocations(ctx, date)
		if err != nil {
			return nil, err
		}
		if err := schemas.ValidateLocations(payload); err != nil {
			return nil, err
		}

		var raw types.RawLocationList
		if err := json.Unmarshal(payload, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode locations payload: %w", err)
		}

		loc := findLocation(raw.Locations, locationID)
		if loc == nil {
			return nil, fmt.Errorf("location %d not found in payload for %s", locationID, date.Format("2006-01-02"))
		}
		sched.LocationName = loc.Name
		sched.Days = append(sched.Days, renderDay(loc, date))
	}
	return sched, nil
}

func findLocation(locs []types.RawLocation, id int) *types.RawLocation {
	for i := range locs {
		if locs[i].ID == id {
			return &locs[i]
		}
	}
	return nil
}

func renderDay(loc *types.RawLocation, date time.Time) DayHours {
	windows := schedule.Normalize(loc, date)
	times := make([]string, 0, len(windows))
	for _, w := range windows {
		times = append(times, w.Open.Format(hourFormat)+" - "+w.Close.Format(hourFormat))
	}
	if len(times) == 0 {
		times = []string{"Closed"}
	}
	return DayHours{
		Day:   date.Weekday().String(),
		Date:  date,
		Times: times,
	}
}
