package readmodel

import (
	"ruangobat-admin/internal/domain/access"
	"ruangobat-admin/internal/domain/badge"
	"ruangobat-admin/internal/infra/logger"
)

// Row is one access as rendered in the admin table.
type Row struct {
	access.Access
	Badge       *badge.Badge    `json:"badge,omitempty"`
	Actions     []access.Action `json:"actions"`
	StatusError string          `json:"status_error,omitempty"`
}

// PresentAccess decorates an access with its badge and allowed actions. An
// unrecognized status is reported and yields a row with no actions.
func PresentAccess(a access.Access, log logger.Logger) Row {
	p, err := access.Present(a)
	if err != nil {
		log.Error("unexpected access status from backend", err, map[string]interface{}{
			"access_id": a.AccessID,
			"status":    string(a.Status),
		})
		return Row{Access: a, Actions: []access.Action{}, StatusError: err.Error()}
	}
	if err := a.Validate(); err != nil {
		log.Warn("access record breaks backend invariants", err, map[string]interface{}{"access_id": a.AccessID})
	}
	b := p.Badge
	return Row{Access: a, Badge: &b, Actions: p.Actions}
}
