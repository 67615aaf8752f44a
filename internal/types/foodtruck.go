package types

import "time"

// FoodTruckEvent is one weekend food-truck announcement scraped from the
// events page: when it happens, where, and which trucks will be there.
type FoodTruckEvent struct {
	Date   time.Time  `json:"date"`
	Window TimeWindow `json:"window"`
	Place  string     `json:"place"`
	Trucks []string   `json:"trucks"`
}
