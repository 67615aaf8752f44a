package locations

import "github.com/campbell/tigerdine/internal/types"

// IDMap maps TigerCenter location IDs to the (locationId, accountId) pairs
// used by FD MealPlanner. The two systems share no identifiers, so the
// mapping is maintained by hand and injected into the record builder; tests
// and deployments can swap in their own.
type IDMap map[int]types.FDMPIDs

// DefaultIDMap covers the locations known to have FD MealPlanner menus,
// ordered the way the FD MealPlanner search API returns them.
var DefaultIDMap = IDMap{
	30:  {LocationID: 1, AccountID: 1},   // Artesano
	31:  {LocationID: 2, AccountID: 2},   // Beanz
	23:  {LocationID: 7, AccountID: 7},   // Crossroads
	25:  {LocationID: 8, AccountID: 8},   // Cantina
	34:  {LocationID: 6, AccountID: 6},   // Ctrl-Alt-DELi
	21:  {LocationID: 10, AccountID: 10}, // Gracie's
	22:  {LocationID: 4, AccountID: 4},   // Brick City Cafe
	441: {LocationID: 11, AccountID: 11}, // Loaded Latke
	38:  {LocationID: 12, AccountID: 12}, // Midnight Oil
	26:  {LocationID: 14, AccountID: 4},  // RITZ
	35:  {LocationID: 18, AccountID: 17}, // The College Grind
	24:  {LocationID: 15, AccountID: 14}, // The Commons
}

// Lookup returns the FD MealPlanner IDs for a TigerCenter location ID, or
// nil if the location has no menu mapping.
func (m IDMap) Lookup(locationID int) *types.FDMPIDs {
	if ids, ok := m[locationID]; ok {
		return &ids
	}
	return nil
}
