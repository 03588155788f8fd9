package idempotency

import "time"

// Key is the token attached to every create-access request of one logical
// submission. It is reused across retries and replaced after a success.
type Key string

func (k Key) IsZero() bool { return k == "" }

// GrantFlow is one admin's "grant access" form session.
type GrantFlow struct {
	ID              string  `gorm:"primaryKey;type:varchar(36)"`
	AdminID         string  `gorm:"column:admin_id;type:varchar(64);not null;index"`
	IdempotencyKey  *string `gorm:"column:idempotency_key;type:varchar(36)"`
	KeyIssuedAt     *time.Time
	CompletedGrants int `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
