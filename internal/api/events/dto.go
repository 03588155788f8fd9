package events

import (
	"time"

	"ruangobat-admin/internal/domain/badge"
	"ruangobat-admin/internal/domain/events"
)

type windowBody struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

type eventBody struct {
	Title          string     `json:"title" binding:"required,max=200"`
	UniversityName string     `json:"university_name" binding:"required,max=200"`
	ImgURL         string     `json:"img_url" binding:"omitempty,url"`
	Content        string     `json:"content"`
	Window         windowBody `json:"registration_window"`
}

// eventRow is an event with its window status derived for one request's now.
type eventRow struct {
	EventID          string                     `json:"event_id"`
	Title            string                     `json:"title"`
	UniversityName   string                     `json:"university_name"`
	ImgURL           string                     `json:"img_url"`
	Content          string                     `json:"content,omitempty"`
	RegistrationDate string                     `json:"registration_date"`
	Window           *events.RegistrationWindow `json:"registration_window,omitempty"`
	Status           events.WindowStatus        `json:"status,omitempty"`
	Badge            *badge.Badge               `json:"badge,omitempty"`
	WindowError      string                     `json:"window_error,omitempty"`
	CreatedAt        *time.Time                 `json:"created_at,omitempty"`
}

type eventPage struct {
	Events      []eventRow `json:"events"`
	Page        int        `json:"page"`
	TotalEvents int        `json:"total_events"`
	TotalPages  int        `json:"total_pages"`
}
