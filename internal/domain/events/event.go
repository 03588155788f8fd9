package events

import "time"

// Event is a university admission exam event (apotekerclass).
type Event struct {
	EventID        string             `json:"event_id"`
	Title          string             `json:"title"`
	UniversityName string             `json:"university_name"`
	ImgURL         string             `json:"img_url"`
	Content        string             `json:"content"`
	Window         RegistrationWindow `json:"registration_window"`
	CreatedAt      *time.Time         `json:"created_at,omitempty"`
}
