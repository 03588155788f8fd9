package access

import "fmt"

// ActionsFor lists the row actions the UI may offer for a status.
// Expired and revoked grants are terminal: only the detail view remains.
func ActionsFor(status Status) ([]Action, error) {
	switch status {
	case StatusActive, StatusScheduled:
		return []Action{ActionDetail, ActionChangePlan, ActionRevoke}, nil
	case StatusExpired, StatusRevoked:
		return []Action{ActionDetail}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, string(status))
	}
}

func Allows(status Status, action Action) bool {
	actions, err := ActionsFor(status)
	if err != nil {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
