// Package timetext recovers concrete time ranges from the free-text
// fragments upstream embeds in vendor and event announcements, e.g.
// "4-7p.m." or "11-2 p.m.".
//
// The source text almost never disambiguates the open side with an explicit
// meridiem, so any open hour without an "a.m." marker is assumed to be
// afternoon and shifted by 12 hours. This makes "11-2 p.m." parse as
// 23:00-14:00 rather than 11:00-14:00. That is a quirk of the upstream
// format, preserved deliberately; correcting it would diverge from observed
// behavior.
package timetext

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/campbell/tigerdine/internal/types"
)

// UnparsableRangeError indicates a fragment could not be split into open and
// close tokens. Callers skip the offending record and continue with the rest
// of the batch.
type UnparsableRangeError struct {
	Raw string
}

func (e *UnparsableRangeError) Error() string {
	return fmt.Sprintf("unparsable time range: %q", e.Raw)
}

// ParseRange extracts a time window from a free-text range fragment,
// anchoring the resulting hours to referenceDate. The fragment is split on
// its first hyphen; later hyphens belong to the close side.
//
// The close side always gets 12 hours added: no vendor has ever been
// observed leaving before noon. An optional minutes component separated by
// ":" is accepted on the close side.
func ParseRange(raw string, referenceDate time.Time) (types.TimeWindow, error) {
	openText, closeText, found := strings.Cut(raw, "-")
	if !found {
		return types.TimeWindow{}, &UnparsableRangeError{Raw: raw}
	}
	openText = strings.TrimSpace(openText)
	closeText = strings.TrimSpace(closeText)

	var openHour int
	if strings.Contains(openText, "a.m") {
		n, err := strconv.Atoi(digitsOnly(openText))
		if err != nil {
			return types.TimeWindow{}, &UnparsableRangeError{Raw: raw}
		}
		openHour = n
	} else {
		// Not in the morning, add 12 hours.
		n, err := strconv.Atoi(openText)
		if err != nil {
			return types.TimeWindow{}, &UnparsableRangeError{Raw: raw}
		}
		openHour = n + 12
	}

	closeDigits := clockOnly(closeText)
	closeHourText, closeMinuteText, _ := strings.Cut(closeDigits, ":")
	n, err := strconv.Atoi(closeHourText)
	if err != nil {
		return types.TimeWindow{}, &UnparsableRangeError{Raw: raw}
	}
	closeHour := n + 12
	closeMinute := 0
	if closeMinuteText != "" {
		if m, err := strconv.Atoi(closeMinuteText); err == nil {
			closeMinute = m
		}
	}

	return types.TimeWindow{
		Open:  atHourMinute(referenceDate, openHour, 0),
		Close: atHourMinute(referenceDate, closeHour, closeMinute),
	}, nil
}

func atHourMinute(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// digitsOnly strips everything but digits, e.g. "11 a.m." -> "11".
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// clockOnly strips everything but digits and the minutes separator,
// e.g. "2:30 p.m.)" -> "2:30".
func clockOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ':' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
