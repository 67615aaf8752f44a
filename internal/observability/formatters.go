// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/campbell/tigerdine/internal/locations"
	"github.com/campbell/tigerdine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// statusLabels render the open statuses the way the UI shows them.
var statusLabels = map[types.OpenStatus]string{
	types.StatusOpen:        "Open",
	types.StatusClosed:      "Closed",
	types.StatusOpeningSoon: "Opening Soon",
	types.StatusClosingSoon: "Closing Soon",
}

var vendorLabels = map[types.VendorStatus]string{
	types.VendorHereNow:       "Here Now",
	types.VendorGone:          "Gone",
	types.VendorArrivingLater: "Arriving Later",
	types.VendorArrivingSoon:  "Arriving Soon",
	types.VendorLeavingSoon:   "Leaving Soon",
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintLocation outputs a human-readable summary of one normalized location.
func (p *Printer) PrintLocation(rec *types.DiningLocation) {
	if rec == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Status:   %s\n", statusLabels[rec.Open]))
	if len(rec.Hours) == 0 {
		sb.WriteString("Hours:    Closed today\n")
	} else {
		for _, w := range rec.Hours {
			sb.WriteString(fmt.Sprintf("Hours:    %s - %s\n",
				w.Open.Format("3:04 PM"), w.Close.Format("3:04 PM")))
		}
	}

	if len(rec.Vendors) > 0 {
		sb.WriteString("\nVisiting vendors:\n")
		for _, v := range rec.Vendors {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", v.Name, vendorLabels[v.Status]))
		}
	}

	if len(rec.DailySpecials) > 0 {
		sb.WriteString("\nDaily specials:\n")
		count := min(len(rec.DailySpecials), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := rec.DailySpecials[i]
			sb.WriteString(fmt.Sprintf("  • %s", strings.TrimSpace(s.Name)))
			if s.Type != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", s.Type))
			}
			sb.WriteString("\n")
		}
		if len(rec.DailySpecials) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.DailySpecials)-maxItemsToShow))
		}
	}

	p.printBox(rec.Name, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFoodTruckEvents outputs the scraped food-truck events.
func (p *Printer) PrintFoodTruckEvents(events []types.FoodTruckEvent) {
	if len(events) == 0 {
		p.printBox("FOOD TRUCKS", "No upcoming events found")
		return
	}

	var sb strings.Builder
	for i, e := range events {
		sb.WriteString(fmt.Sprintf("%s, %s - %s",
			e.Date.Format("Monday, January 2"),
			e.Window.Open.Format("3:04 PM"),
			e.Window.Close.Format("3:04 PM")))
		if e.Place != "" {
			sb.WriteString(fmt.Sprintf(" @ %s", e.Place))
		}
		sb.WriteString("\n")
		for _, truck := range e.Trucks {
			sb.WriteString(fmt.Sprintf("  • %s\n", truck))
		}
		if i < len(events)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FOOD TRUCKS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWeeklyHours outputs a location's upcoming week of hours.
func (p *Printer) PrintWeeklyHours(name string, week []locations.DayHours) {
	var sb strings.Builder
	for _, day := range week {
		sb.WriteString(fmt.Sprintf("%-10s %s\n", day.Day, strings.Join(day.Times, ", ")))
	}
	p.printBox(fmt.Sprintf("%s - WEEKLY HOURS", name), strings.TrimSuffix(sb.String(), "\n"))
}
