package schedule

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/campbell/tigerdine/internal/types"
)

// Normalize converts a location's weekly events and exceptions into the
// concrete open periods for targetDate, sorted ascending by open time. An
// empty result means the location is closed all day; that is not an error.
//
// Exceptions take precedence over an event's default recurrence, and only
// the first exception in an event's list is consulted. Upstream sometimes
// attaches the same exception period to multiple events (seen when separate
// breakfast and lunch slots collapse into one brunch period), so candidate
// slots are deduplicated at the string level before any time conversion.
func Normalize(loc *types.RawLocation, targetDate time.Time) []types.TimeWindow {
	if len(loc.Events) == 0 {
		return nil
	}

	var openStrings, closeStrings []string
	weekday := strings.ToUpper(targetDate.Weekday().String())

	for _, event := range loc.Events {
		if len(event.Exceptions) > 0 {
			// Only record the exception times if the location is actually
			// open during them and they are not a repeat.
			exc := event.Exceptions[0]
			if exc.Open && !contains(openStrings, exc.StartTime) && !contains(closeStrings, exc.EndTime) {
				openStrings = append(openStrings, exc.StartTime)
				closeStrings = append(closeStrings, exc.EndTime)
			}
		} else if !contains(openStrings, event.StartTime) && !contains(closeStrings, event.EndTime) {
			// The regular schedule says which weekdays it applies to; if the
			// target day isn't in that list and there is no exception, there
			// are no hours from this event.
			if contains(event.DaysOfWeek, weekday) {
				openStrings = append(openStrings, event.StartTime)
				closeStrings = append(closeStrings, event.EndTime)
			}
		}
	}

	// Most likely the day's exceptions dictate that the location is closed.
	// Mostly comes into play on holidays.
	if len(openStrings) == 0 {
		return nil
	}

	windows := make([]types.TimeWindow, 0, len(openStrings))
	for i := range openStrings {
		windows = append(windows, types.TimeWindow{
			Open:  atTimeOfDay(targetDate, openStrings[i]),
			Close: atTimeOfDay(targetDate, closeStrings[i]),
		})
	}

	// A close at or before the open means midnight or later: either open
	// until midnight or a 24-hour service, so roll the close to the next day.
	for i := range windows {
		if !windows[i].Close.After(windows[i].Open) {
			windows[i].Close = windows[i].Close.AddDate(0, 0, 1)
		}
	}

	// The upstream events are not always in chronological order.
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Open.Before(windows[j].Open)
	})

	return windows
}

// atTimeOfDay anchors an "HH:MM:SS" time-of-day string to the given date.
// Malformed components fall back to zero rather than failing the whole
// record.
func atTimeOfDay(date time.Time, tod string) time.Time {
	parts := strings.Split(tod, ":")
	var hms [3]int
	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := strconv.Atoi(parts[i])
		if err == nil {
			hms[i] = n
		}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hms[0], hms[1], hms[2], 0, date.Location())
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
