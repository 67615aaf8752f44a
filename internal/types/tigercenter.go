package types

// HoursException is a date-range override of a weekly event's hours. An
// exception with Open=false marks the location closed for the whole period.
type HoursException struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Open      bool   `json:"open"`
}

// RawEvent is one recurring weekly open period as served by the TigerCenter
// API: "HH:MM:SS" time-of-day strings plus the uppercase weekday names the
// slot applies to, and an optional ordered exception list.
type RawEvent struct {
	StartTime  string           `json:"startTime"`
	EndTime    string           `json:"endTime"`
	DaysOfWeek []string         `json:"daysOfWeek"`
	Exceptions []HoursException `json:"exceptions,omitempty"`
}

// RawMenu is one free-text "menu" announcement attached to a location. The
// category string discriminates visiting vendors from daily specials.
// Description is empty for specials.
type RawMenu struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
}

// RawLocation is the upstream record for a single dining location before
// normalization.
type RawLocation struct {
	ID          int        `json:"id"`
	MdoID       int        `json:"mdoId"`
	Name        string     `json:"name"`
	Summary     string     `json:"summary"`
	Description string     `json:"description"`
	MapsURL     string     `json:"mapsUrl"`
	Events      []RawEvent `json:"events"`
	Menus       []RawMenu  `json:"menus"`
}

// RawLocationList is the top-level shape of the TigerCenter dining payload.
type RawLocationList struct {
	Locations []RawLocation `json:"locations"`
}

// RawOccupancy is one entry of the maps.rit.edu density payload, keyed by a
// location's MDO ID. The payload is a JSON array; only the first entry is
// meaningful.
type RawOccupancy struct {
	Count      int    `json:"count"`
	Location   string `json:"location"`
	Building   string `json:"building"`
	MdoID      int    `json:"mdo_id"`
	MaxOcc     int    `json:"max_occ"`
	OpenStatus string `json:"open_status"`
}
