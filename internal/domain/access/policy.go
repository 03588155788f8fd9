package access

import "ruangobat-admin/internal/domain/badge"

type Presentation struct {
	Badge   badge.Badge
	Actions []Action
}

// Present derives everything the UI shows for one access from its persisted status.
func Present(a Access) (Presentation, error) {
	status, err := ParseStatus(string(a.Status))
	if err != nil {
		return Presentation{}, err
	}
	b, err := BadgeFor(status)
	if err != nil {
		return Presentation{}, err
	}
	actions, err := ActionsFor(status)
	if err != nil {
		return Presentation{}, err
	}
	return Presentation{Badge: b, Actions: actions}, nil
}
