package locations

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campbell/tigerdine/internal/types"
)

// OccupancyPercent derives a location's crowding percentage from the raw
// density payload: current headcount over maximum occupancy, scaled to 100.
func OccupancyPercent(payload []byte) (float64, error) {
	var entries []types.RawOccupancy
	if err := json.Unmarshal(payload, &entries); err != nil {
		return 0, fmt.Errorf("failed to decode occupancy payload: %w", err)
	}
	if len(entries) == 0 {
		return 0, errors.New("empty occupancy payload")
	}
	if entries[0].MaxOcc == 0 {
		return 0, errors.New("occupancy payload has zero maximum occupancy")
	}
	return float64(entries[0].Count) / float64(entries[0].MaxOcc) * 100, nil
}
