package access

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ruangobat-admin/internal/domain/badge"
)

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		status    Status
		wantColor badge.Color
		wantLabel string
	}{
		{StatusRevoked, badge.ColorDanger, "Ditangguhkan"},
		{StatusExpired, badge.ColorDefault, "Kadaluarsa"},
		{StatusScheduled, badge.ColorPrimary, "Diperpanjang"},
		{StatusActive, badge.ColorSuccess, "Aktif"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got, err := BadgeFor(tt.status)
			require.NoError(t, err)
			assert.Equal(t, tt.wantColor, got.Color)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.NotEmpty(t, got.Icon)

			again, err := BadgeFor(tt.status)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestBadgeFor_UnknownStatusIsAnError(t *testing.T) {
	for _, raw := range []string{"", "pending", "ACTIVE "} {
		got, err := BadgeFor(Status(raw))
		require.Error(t, err, raw)
		assert.True(t, errors.Is(err, ErrUnknownStatus))
		assert.Equal(t, badge.Badge{}, got)
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" Scheduled ")
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, s)

	_, err = ParseStatus("suspended")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestActionsFor(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusScheduled} {
		actions, err := ActionsFor(s)
		require.NoError(t, err)
		assert.ElementsMatch(t, []Action{ActionDetail, ActionChangePlan, ActionRevoke}, actions)
		assert.True(t, Allows(s, ActionRevoke))
		assert.True(t, Allows(s, ActionChangePlan))
	}

	for _, s := range []Status{StatusExpired, StatusRevoked} {
		actions, err := ActionsFor(s)
		require.NoError(t, err)
		assert.Equal(t, []Action{ActionDetail}, actions)
		assert.False(t, Allows(s, ActionRevoke))
		assert.False(t, Allows(s, ActionChangePlan))
	}

	_, err := ActionsFor("archived")
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.False(t, Allows("archived", ActionDetail))
}

func TestPresent(t *testing.T) {
	p, err := Present(Access{AccessID: "a1", Status: StatusActive})
	require.NoError(t, err)
	assert.Equal(t, "Aktif", p.Badge.Label)
	assert.Contains(t, p.Actions, ActionRevoke)

	_, err = Present(Access{AccessID: "a2", Status: "paused"})
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestValidate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)
	reason := "refund"

	assert.NoError(t, Access{Status: StatusActive, StartedAt: &start, ExpiredAt: &end}.Validate())
	assert.ErrorIs(t, Access{Status: StatusActive, StartedAt: &end, ExpiredAt: &start}.Validate(), ErrInvalidRecord)
	assert.ErrorIs(t, Access{Status: StatusRevoked}.Validate(), ErrInvalidRecord)
	assert.NoError(t, Access{Status: StatusRevoked, RevokedAt: &end, UpdateReason: &reason}.Validate())
	assert.ErrorIs(t, Access{Status: "gone"}.Validate(), ErrUnknownStatus)
}
