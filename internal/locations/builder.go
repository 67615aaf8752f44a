// Package locations assembles fully normalized per-day dining location
// records from the raw upstream payload.
package locations

import (
	"fmt"
	"strings"
	"time"

	"github.com/campbell/tigerdine/internal/schedule"
	"github.com/campbell/tigerdine/internal/types"
	"github.com/campbell/tigerdine/internal/vendors"
)

// mapsURLFormat builds a maps link from the mdoId key. The mapsUrl served by
// TigerCenter is not compatible with the RIT map deployed in December 2025,
// so the link is derived here instead.
const mapsURLFormat = "https://maps.rit.edu/?mdo_id=%d"

// BuildRecord produces the normalized record for one location on one
// calendar date: concrete open periods, the open status at now, visiting
// vendors, and daily specials. ids may be nil when no menu lookup is wanted.
func BuildRecord(loc *types.RawLocation, date, now time.Time, ids IDMap) types.DiningLocation {
	// Descriptions sometimes carry HTML <br /> tags despite also having \n.
	desc := strings.ReplaceAll(loc.Description, "<br />", "")

	windows := schedule.Normalize(loc, date)
	visiting, specials := vendors.Classify(loc.Menus, date, now)

	return types.DiningLocation{
		ID:            loc.ID,
		MdoID:         loc.MdoID,
		FDMPIDs:       ids.Lookup(loc.ID),
		Name:          loc.Name,
		Summary:       loc.Summary,
		Description:   desc,
		MapsURL:       fmt.Sprintf(mapsURLFormat, loc.MdoID),
		Date:          date,
		Hours:         windows,
		Open:          schedule.Classify(now, windows),
		Vendors:       visiting,
		DailySpecials: specials,
	}
}

// Refresh recomputes the statuses that depend on the current instant without
// re-normalizing the schedule, so callers polling on a timer can keep a
// record's labels current.
func Refresh(rec *types.DiningLocation, now time.Time) {
	rec.Open = schedule.Classify(now, rec.Hours)
	for i := range rec.Vendors {
		rec.Vendors[i].Status = vendors.PresenceStatus(now, rec.Vendors[i].Window)
	}
}
