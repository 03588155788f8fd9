package access

import "time"

// Status is the backend-computed lifecycle state of an access grant.
type Status string

const (
	StatusActive    Status = "active"
	StatusScheduled Status = "scheduled"
	StatusExpired   Status = "expired"
	StatusRevoked   Status = "revoked"
)

type Action string

const (
	ActionDetail     Action = "detail"
	ActionChangePlan Action = "change_plan"
	ActionRevoke     Action = "revoke"
)

// Access is one user-product grant as returned by the Ruangobat API.
type Access struct {
	AccessID     string     `json:"access_id"`
	UserID       string     `json:"user_id"`
	Fullname     string     `json:"fullname"`
	ProductID    string     `json:"product_id,omitempty"`
	ProductName  string     `json:"product_name,omitempty"`
	ProductType  string     `json:"product_type"`
	Duration     int        `json:"duration"` // months
	StartedAt    *time.Time `json:"started_at"`
	ExpiredAt    *time.Time `json:"expired_at"`
	Status       Status     `json:"status"`
	RevokedAt    *time.Time `json:"revoked_at,omitempty"`
	UpdateReason *string    `json:"update_reason,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}
