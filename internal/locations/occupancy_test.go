package locations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupancyPercent(t *testing.T) {
	payload := []byte(`[{"count":75,"location":"Gracie's","building":"Grace Watson Hall","mdo_id":104,"max_occ":300,"open_status":"open"}]`)

	percent, err := OccupancyPercent(payload)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, percent, 0.001)
}

func TestOccupancyPercent_FirstEntryWins(t *testing.T) {
	payload := []byte(`[{"count":50,"max_occ":100},{"count":0,"max_occ":100}]`)

	percent, err := OccupancyPercent(payload)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, percent, 0.001)
}

func TestOccupancyPercent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty array", `[]`},
		{"zero maximum", `[{"count":10,"max_occ":0}]`},
		{"malformed", `{"count":10}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OccupancyPercent([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}
