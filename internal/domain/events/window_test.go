package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ruangobat-admin/internal/domain/badge"
)

func TestStatusAt(t *testing.T) {
	w, err := ParseRegistrationWindow("2024-01-01T00:00:00Z - 2024-01-31T23:59:59Z")
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		want WindowStatus
	}{
		{"inside", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), WindowOpen},
		{"at start", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), WindowOpen},
		{"at end", time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), WindowOpen},
		{"after end", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), WindowClosed},
		{"before start", time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC), WindowUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.StatusAt(tt.now))
		})
	}
}

func TestParseRegistrationWindow_Malformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"2024-01-01T00:00:00Z",
		"2024-01-01T00:00:00Z-2024-01-31T23:59:59Z",
		"2024-01-01 - 2024-01-15 - 2024-01-31",
		"kemarin - besok",
		"2024-02-01 - 2024-01-01",
	} {
		_, err := ParseRegistrationWindow(raw)
		assert.ErrorIs(t, err, ErrMalformedWindow, raw)
	}
}

func TestParseRegistrationWindowIn_UsesLocationForZonelessDates(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	w, err := ParseRegistrationWindowIn("2024-03-01 08:00 - 2024-03-10", jakarta)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC), w.Start.UTC())
	assert.Equal(t, time.Date(2024, 3, 9, 17, 0, 0, 0, time.UTC), w.End.UTC())
}

func TestRegistrationWindowString_RoundTrips(t *testing.T) {
	w, err := NewRegistrationWindow(
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 20, 17, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T00:00:00Z - 2024-05-20T17:00:00Z", w.String())

	back, err := ParseRegistrationWindow(w.String())
	require.NoError(t, err)
	assert.True(t, back.Start.Equal(w.Start))
	assert.True(t, back.End.Equal(w.End))
}

func TestBadgeFor(t *testing.T) {
	open, err := BadgeFor(WindowOpen)
	require.NoError(t, err)
	assert.Equal(t, badge.ColorSuccess, open.Color)

	closed, err := BadgeFor(WindowClosed)
	require.NoError(t, err)
	assert.Equal(t, badge.ColorDanger, closed.Color)

	upcoming, err := BadgeFor(WindowUpcoming)
	require.NoError(t, err)
	assert.Equal(t, badge.ColorDefault, upcoming.Color)

	_, err = BadgeFor("Selesai")
	assert.Error(t, err)
}
