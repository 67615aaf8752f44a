// Package vendors separates a location's free-text menu announcements into
// visiting vendors and daily specials, deriving a concrete time window and a
// presence status for each vendor.
package vendors

import (
	"strings"
	"time"

	"github.com/campbell/tigerdine/internal/schedule"
	"github.com/campbell/tigerdine/internal/timetext"
	"github.com/campbell/tigerdine/internal/types"
)

// Category strings used by the upstream menu records.
const (
	CategoryVisitingChef  = "Visiting Chef"
	CategoryDailySpecials = "Daily Specials"
)

// Some vendors arrive without a description, apparently.
const missingDescription = "No description available"

// Classify walks a location's raw menu entries and splits them into visiting
// vendors and daily specials. Vendor names arrive as "Name (4-7p.m.)"; the
// parenthesized fragment is run through the time-range parser anchored to
// referenceDate, and the presence status is derived from now. Entries whose
// time range cannot be parsed are skipped; one bad entry never aborts the
// batch. Categories other than the two known ones are ignored.
func Classify(menus []types.RawMenu, referenceDate, now time.Time) ([]types.VisitingVendor, []types.DailySpecial) {
	var visiting []types.VisitingVendor
	var specials []types.DailySpecial

	for _, menu := range menus {
		switch menu.Category {
		case CategoryVisitingChef:
			name, rawRange, ok := strings.Cut(menu.Name, "(")
			if !ok {
				continue
			}
			window, err := timetext.ParseRange(strings.ReplaceAll(rawRange, ")", ""), referenceDate)
			if err != nil {
				continue
			}
			desc := menu.Description
			if desc == "" {
				desc = missingDescription
			}
			visiting = append(visiting, types.VisitingVendor{
				Name:        strings.TrimSpace(name),
				Description: desc,
				Window:      window,
				Status:      PresenceStatus(now, window),
			})
		case CategoryDailySpecials:
			name, rawType, _ := strings.Cut(menu.Name, "(")
			specials = append(specials, types.DailySpecial{
				Name: name,
				Type: strings.ReplaceAll(rawType, ")", ""),
			})
		}
	}

	return visiting, specials
}

// PresenceStatus maps the four open statuses onto the five vendor presence
// states. A Closed window resolves to ArrivingLater before the open instant
// and Gone after it.
func PresenceStatus(now time.Time, window types.TimeWindow) types.VendorStatus {
	switch schedule.Classify(now, []types.TimeWindow{window}) {
	case types.StatusOpen:
		return types.VendorHereNow
	case types.StatusOpeningSoon:
		return types.VendorArrivingSoon
	case types.StatusClosingSoon:
		return types.VendorLeavingSoon
	default:
		if now.Before(window.Open) {
			return types.VendorArrivingLater
		}
		return types.VendorGone
	}
}
