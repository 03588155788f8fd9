package ruangobat

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ruangobat-admin/internal/domain/events"
)

// EventPayload is the wire shape of an exam event. RegistrationDate keeps the
// composite "<start> - <end>" string; convert it once with ToEvent.
type EventPayload struct {
	EventID          string     `json:"event_id,omitempty"`
	Title            string     `json:"title"`
	UniversityName   string     `json:"university_name"`
	ImgURL           string     `json:"img_url"`
	Content          string     `json:"content"`
	RegistrationDate string     `json:"registration_date"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

func (p EventPayload) ToEvent(loc *time.Location) (events.Event, error) {
	window, err := events.ParseRegistrationWindowIn(p.RegistrationDate, loc)
	if err != nil {
		return events.Event{}, err
	}
	return events.Event{
		EventID:        p.EventID,
		Title:          p.Title,
		UniversityName: p.UniversityName,
		ImgURL:         p.ImgURL,
		Content:        p.Content,
		Window:         window,
		CreatedAt:      p.CreatedAt,
	}, nil
}

func PayloadFromEvent(e events.Event) EventPayload {
	return EventPayload{
		EventID:          e.EventID,
		Title:            e.Title,
		UniversityName:   e.UniversityName,
		ImgURL:           e.ImgURL,
		Content:          e.Content,
		RegistrationDate: e.Window.String(),
	}
}

type EventPage struct {
	Events      []EventPayload `json:"events"`
	Page        int            `json:"page"`
	TotalEvents int            `json:"total_events"`
	TotalPages  int            `json:"total_pages"`
}

func (c *Client) ListEvents(ctx context.Context, token string, page int) (*EventPage, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	var res EventPage
	if err := c.do(ctx, token, http.MethodGet, "/events", q, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetEvent(ctx context.Context, token, eventID string) (*EventPayload, error) {
	var res EventPayload
	if err := c.do(ctx, token, http.MethodGet, "/events/"+url.PathEscape(eventID), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateEvent(ctx context.Context, token string, payload EventPayload) (*EventPayload, error) {
	var res EventPayload
	if err := c.do(ctx, token, http.MethodPost, "/events", nil, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateEvent(ctx context.Context, token, eventID string, payload EventPayload) error {
	payload.EventID = eventID
	return c.do(ctx, token, http.MethodPatch, "/events/"+url.PathEscape(eventID), nil, payload, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, token, eventID string) error {
	return c.do(ctx, token, http.MethodDelete, "/events/"+url.PathEscape(eventID), nil, nil, nil)
}
