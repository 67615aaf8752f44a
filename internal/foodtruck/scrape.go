// Package foodtruck extracts weekend food-truck events from the loosely
// structured prose of the RIT events page. There is no schema to rely on:
// an event is a paragraph with an emphasized heading, recognized by anchor
// patterns for its date, time range, and lot, followed by a list of trucks.
package foodtruck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/campbell/tigerdine/internal/timetext"
	"github.com/campbell/tigerdine/internal/types"
)

// MalformedMarkupError indicates the page could not be parsed as markup at
// all, so no partial extraction is possible.
type MalformedMarkupError struct {
	Cause error
}

func (e *MalformedMarkupError) Error() string {
	return fmt.Sprintf("malformed markup: %v", e.Cause)
}

func (e *MalformedMarkupError) Unwrap() error {
	return e.Cause
}

var (
	dateRe = regexp.MustCompile(`(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday),\s+[A-Za-z]+\s+\d+`)
	timeRe = regexp.MustCompile(`\d{1,2}(?::\d{2})?\s*[-–]\s*\d{1,2}(?::\d{2})?\s*p\.m\.`)
	lotRe  = regexp.MustCompile(`A-Z Lot`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// dateLayout matches fragments like "Friday, June 5" with the year appended.
const dateLayout = "Monday, January 2 2006"

// Scrape pulls the list of food-truck events out of a page. Zero matches is
// a normal result, not an error; only a page that cannot be parsed as markup
// is fatal. A block that fails to parse is skipped without aborting the rest
// of the page.
func Scrape(html string, now time.Time) ([]types.FoodTruckEvent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &MalformedMarkupError{Cause: err}
	}

	events := []types.FoodTruckEvent{}

	doc.Find("p:has(strong)").Each(func(_ int, p *goquery.Selection) {
		text := whitespaceRe.ReplaceAllString(p.Text(), " ")

		date := dateRe.FindString(text)
		if date == "" {
			// Not a real event announcement.
			return
		}
		timeFrag := timeRe.FindString(text)
		place := lotRe.FindString(text)

		// The page never states a year, so resolve against the current one.
		eventDate, err := time.ParseInLocation(dateLayout, date+" "+strconv.Itoa(now.Year()), now.Location())
		if err != nil {
			eventDate = now
		}

		window := parseWindow(timeFrag, now)

		// Only paragraphs immediately followed by a list of trucks announce
		// a real event.
		next := p.Next()
		if !next.Is("ul") {
			return
		}
		var trucks []string
		next.Find("li").Each(func(_ int, li *goquery.Selection) {
			trucks = append(trucks, strings.TrimSpace(li.Text()))
		})

		events = append(events, types.FoodTruckEvent{
			Date:   eventDate,
			Window: window,
			Place:  place,
			Trucks: trucks,
		})
	})

	return events, nil
}

// parseWindow runs the extracted time fragment through the shared range
// parser, anchored to now for time-of-day purposes. A fragment that cannot
// be parsed degrades to an empty window at now rather than dropping the
// event.
func parseWindow(fragment string, now time.Time) types.TimeWindow {
	fragment = strings.ReplaceAll(fragment, "–", "-")
	window, err := timetext.ParseRange(fragment, now)
	if err != nil {
		return types.TimeWindow{Open: now, Close: now}
	}
	return window
}
