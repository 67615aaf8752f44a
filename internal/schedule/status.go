// Package schedule derives concrete open periods and open/closed status from
// the raw weekly-recurrence records served by the TigerCenter API.
package schedule

import (
	"time"

	"github.com/campbell/tigerdine/internal/types"
)

// SoonWindow is the lookahead used for the OpeningSoon and ClosingSoon
// states. A window boundary exactly SoonWindow away still counts as "soon".
const SoonWindow = 30 * time.Minute

// Classify evaluates a list of open periods against now and returns the
// overall status. Windows are evaluated in order and the first one that
// yields a non-Closed status wins; this catches locations with split
// lunch/dinner schedules where an earlier period has already ended.
func Classify(now time.Time, windows []types.TimeWindow) types.OpenStatus {
	status := types.StatusClosed
	for _, w := range windows {
		status = classifyWindow(now, w)
		if status != types.StatusClosed {
			break
		}
	}
	return status
}

// classifyWindow returns the status of a single open period at the given
// instant. Both window boundaries are inclusive.
func classifyWindow(now time.Time, w types.TimeWindow) types.OpenStatus {
	soon := now.Add(SoonWindow)
	switch {
	case !now.Before(w.Open) && !now.After(w.Close):
		// Open and close exactly 24 hours apart means a 24-hour service,
		// which never reports ClosingSoon.
		if w.Close.Equal(w.Open.AddDate(0, 0, 1)) {
			return types.StatusOpen
		}
		if !w.Close.After(soon) {
			return types.StatusClosingSoon
		}
		return types.StatusOpen
	case !w.Open.After(soon) && w.Close.After(now):
		return types.StatusOpeningSoon
	default:
		return types.StatusClosed
	}
}
