package access

import (
	"errors"
	"fmt"
	"strings"

	"ruangobat-admin/internal/domain/badge"
)

var (
	ErrUnknownStatus = errors.New("unknown access status")
	ErrInvalidRecord = errors.New("invalid access record")
)

// ParseStatus accepts only the four statuses the backend is known to emit.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case StatusActive, StatusScheduled, StatusExpired, StatusRevoked:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// BadgeFor maps a status to the badge shown in access tables.
func BadgeFor(status Status) (badge.Badge, error) {
	switch status {
	case StatusRevoked:
		return badge.Badge{Color: badge.ColorDanger, Icon: "prohibit", Label: "Ditangguhkan"}, nil
	case StatusExpired:
		return badge.Badge{Color: badge.ColorDefault, Icon: "clock-counter-clockwise", Label: "Kadaluarsa"}, nil
	case StatusScheduled:
		return badge.Badge{Color: badge.ColorPrimary, Icon: "calendar-plus", Label: "Diperpanjang"}, nil
	case StatusActive:
		return badge.Badge{Color: badge.ColorSuccess, Icon: "check-circle", Label: "Aktif"}, nil
	default:
		return badge.Badge{}, fmt.Errorf("%w: %q", ErrUnknownStatus, string(status))
	}
}

// Validate checks the record invariants the backend promises.
func (a Access) Validate() error {
	status, err := ParseStatus(string(a.Status))
	if err != nil {
		return err
	}
	if a.StartedAt != nil && a.ExpiredAt != nil && a.StartedAt.After(*a.ExpiredAt) {
		return fmt.Errorf("%w: access %s starts after it expires", ErrInvalidRecord, a.AccessID)
	}
	if status == StatusRevoked {
		if a.RevokedAt == nil || a.UpdateReason == nil || strings.TrimSpace(*a.UpdateReason) == "" {
			return fmt.Errorf("%w: revoked access %s lacks revoked_at or update_reason", ErrInvalidRecord, a.AccessID)
		}
	}
	return nil
}
