// Package types provides type definitions for the dining data used throughout the tigerdine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// OpenStatus represents the four possible states a dining location can be in
// at a given instant.
type OpenStatus string

const (
	StatusOpen        OpenStatus = "open"
	StatusClosed      OpenStatus = "closed"
	StatusOpeningSoon OpenStatus = "opening_soon"
	StatusClosingSoon OpenStatus = "closing_soon"
)

// VendorStatus represents the five possible states a visiting vendor can be in.
type VendorStatus string

const (
	VendorHereNow       VendorStatus = "here_now"
	VendorGone          VendorStatus = "gone"
	VendorArrivingLater VendorStatus = "arriving_later"
	VendorArrivingSoon  VendorStatus = "arriving_soon"
	VendorLeavingSoon   VendorStatus = "leaving_soon"
)

// TimeWindow is a single concrete open period for a location: an open instant
// and a close instant. After normalization Close is always after Open;
// overnight closes are rolled to the following calendar day.
type TimeWindow struct {
	Open  time.Time `json:"open"`
	Close time.Time `json:"close"`
}

// FDMPIDs holds the identifiers required to look a location up in FD
// MealPlanner. Only present for locations that appear in the ID map.
type FDMPIDs struct {
	LocationID int `json:"location_id"`
	AccountID  int `json:"account_id"`
}

// VisitingVendor is a visiting vendor (e.g. a guest chef) present at a
// location for a bounded time range on a single day.
type VisitingVendor struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Window      TimeWindow   `json:"window"`
	Status      VendorStatus `json:"status"`
}

// DailySpecial is a one-day special menu item at a location.
type DailySpecial struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// DiningLocation is the fully normalized record for one location on one
// calendar date: its concrete open periods, the derived open status for the
// instant the record was built, and any vendor announcements.
type DiningLocation struct {
	ID            int              `json:"id"`
	MdoID         int              `json:"mdo_id"`
	FDMPIDs       *FDMPIDs         `json:"fdmp_ids,omitempty"`
	Name          string           `json:"name"`
	Summary       string           `json:"summary"`
	Description   string           `json:"description"`
	MapsURL       string           `json:"maps_url"`
	Date          time.Time        `json:"date"`
	Hours         []TimeWindow     `json:"hours,omitempty"`
	Open          OpenStatus       `json:"open"`
	Vendors       []VisitingVendor `json:"visiting_vendors,omitempty"`
	DailySpecials []DailySpecial   `json:"daily_specials,omitempty"`
}
