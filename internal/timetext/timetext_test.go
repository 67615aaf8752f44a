package timetext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestParseRange_AfternoonRange(t *testing.T) {
	w, err := ParseRange("4-7p.m.", refDate)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC), w.Open)
	assert.Equal(t, time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC), w.Close)
}

func TestParseRange_AmbiguousMorningOpen(t *testing.T) {
	// "11-2p.m." means 11 AM to 2 PM to a human, but the open side carries
	// no meridiem so the heuristic shifts it to 11 PM. Upstream quirk,
	// preserved on purpose.
	w, err := ParseRange("11-2p.m.", refDate)
	require.NoError(t, err)
	assert.Equal(t, 23, w.Open.Hour())
	assert.Equal(t, 14, w.Close.Hour())
}

func TestParseRange_ExplicitMorningOpen(t *testing.T) {
	w, err := ParseRange("11 a.m.-2 p.m.", refDate)
	require.NoError(t, err)
	assert.Equal(t, 11, w.Open.Hour())
	assert.Equal(t, 14, w.Close.Hour())
}

func TestParseRange_CloseSideMinutes(t *testing.T) {
	w, err := ParseRange("5-7:30 p.m.", refDate)
	require.NoError(t, err)
	assert.Equal(t, 17, w.Open.Hour())
	assert.Equal(t, 19, w.Close.Hour())
	assert.Equal(t, 30, w.Close.Minute())
}

func TestParseRange_SurroundingWhitespace(t *testing.T) {
	w, err := ParseRange(" 4 - 7 p.m. ", refDate)
	require.NoError(t, err)
	assert.Equal(t, 16, w.Open.Hour())
	assert.Equal(t, 19, w.Close.Hour())
}

func TestParseRange_AnchorsToReferenceDate(t *testing.T) {
	other := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)
	w, err := ParseRange("4-7p.m.", other)
	require.NoError(t, err)
	assert.Equal(t, other.Year(), w.Open.Year())
	assert.Equal(t, other.Month(), w.Open.Month())
	assert.Equal(t, other.Day(), w.Open.Day())
}

func TestParseRange_Failures(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"no hyphen", "4 p.m."},
		{"empty", ""},
		{"missing open", "-7p.m."},
		{"missing close", "4-"},
		{"no digits at all", "noon-ish"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRange(tc.raw, refDate)
			require.Error(t, err)

			var rangeErr *UnparsableRangeError
			assert.ErrorAs(t, err, &rangeErr)
		})
	}
}
