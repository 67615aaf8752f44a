package locations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campbell/tigerdine/internal/types"
)

var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func testLocation() *types.RawLocation {
	return &types.RawLocation{
		ID:          21,
		MdoID:       104,
		Name:        "Gracie's",
		Summary:     "All-you-care-to-eat dining",
		Description: "Breakfast, lunch, and dinner.<br />\nOpen to all.",
		Events: []types.RawEvent{
			{StartTime: "07:00:00", EndTime: "10:30:00", DaysOfWeek: []string{"MONDAY"}},
			{StartTime: "11:00:00", EndTime: "20:00:00", DaysOfWeek: []string{"MONDAY"}},
		},
		Menus: []types.RawMenu{
			{Name: "Chef X (4-7p.m.)", Category: "Visiting Chef", Description: "Pasta night"},
			{Name: "Taco Bar (Lunch)", Category: "Daily Specials"},
		},
	}
}

func TestBuildRecord_FullRecord(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	rec := BuildRecord(testLocation(), monday, now, DefaultIDMap)

	assert.Equal(t, 21, rec.ID)
	assert.Equal(t, "Gracie's", rec.Name)
	assert.Equal(t, "https://maps.rit.edu/?mdo_id=104", rec.MapsURL)
	assert.NotContains(t, rec.Description, "<br />")
	assert.Contains(t, rec.Description, "Open to all.")

	require.Len(t, rec.Hours, 2)
	assert.Equal(t, types.StatusOpen, rec.Open)

	require.NotNil(t, rec.FDMPIDs)
	assert.Equal(t, 10, rec.FDMPIDs.LocationID)

	require.Len(t, rec.Vendors, 1)
	assert.Equal(t, "Chef X", rec.Vendors[0].Name)
	require.Len(t, rec.DailySpecials, 1)
	assert.Equal(t, "Lunch", rec.DailySpecials[0].Type)
}

func TestBuildRecord_UnmappedLocationHasNoFDMPIDs(t *testing.T) {
	loc := testLocation()
	loc.ID = 9999
	rec := BuildRecord(loc, monday, monday, DefaultIDMap)
	assert.Nil(t, rec.FDMPIDs)
}

func TestBuildRecord_NilIDMap(t *testing.T) {
	rec := BuildRecord(testLocation(), monday, monday, nil)
	assert.Nil(t, rec.FDMPIDs)
}

func TestBuildRecord_NoScheduleMeansClosed(t *testing.T) {
	loc := testLocation()
	loc.Events = nil
	rec := BuildRecord(loc, monday, monday, DefaultIDMap)
	assert.Empty(t, rec.Hours)
	assert.Equal(t, types.StatusClosed, rec.Open)
}

func TestRefresh_UpdatesStatuses(t *testing.T) {
	built := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	rec := BuildRecord(testLocation(), monday, built, DefaultIDMap)
	require.Equal(t, types.StatusOpen, rec.Open)
	require.Equal(t, types.VendorArrivingLater, rec.Vendors[0].Status)

	// Later the same evening the location is still open but the vendor has
	// arrived.
	Refresh(&rec, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))
	assert.Equal(t, types.StatusOpen, rec.Open)
	assert.Equal(t, types.VendorHereNow, rec.Vendors[0].Status)

	// After closing everything flips.
	Refresh(&rec, time.Date(2026, 3, 2, 22, 0, 0, 0, time.UTC))
	assert.Equal(t, types.StatusClosed, rec.Open)
	assert.Equal(t, types.VendorGone, rec.Vendors[0].Status)
}

func TestIDMap_Lookup(t *testing.T) {
	ids := DefaultIDMap.Lookup(21)
	require.NotNil(t, ids)
	assert.Equal(t, 10, ids.LocationID)
	assert.Equal(t, 10, ids.AccountID)

	assert.Nil(t, DefaultIDMap.Lookup(1))
}
