package audit

import "time"

type OperationLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AdminID   string    `json:"admin_id" gorm:"type:varchar(64);index"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	TargetID  string    `json:"target_id"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	ActionGrant      = "grant_access"
	ActionRevoke     = "revoke_access"
	ActionChangePlan = "change_plan"
)
