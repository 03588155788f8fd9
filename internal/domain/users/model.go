package users

import "time"

// User is a row of the Ruangobat user search, used as the grantee selection source.
type User struct {
	UserID      string     `json:"user_id"`
	Fullname    string     `json:"fullname"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	University  string     `json:"university,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
