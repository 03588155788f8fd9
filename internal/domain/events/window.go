package events

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ruangobat-admin/internal/domain/badge"
)

// WindowStatus is derived from the wall clock on every read and never stored.
type WindowStatus string

const (
	WindowOpen     WindowStatus = "Dibuka"
	WindowClosed   WindowStatus = "Ditutup"
	WindowUpcoming WindowStatus = "Akan Datang"
)

const windowSeparator = " - "

var ErrMalformedWindow = errors.New("malformed registration window")

var windowLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type RegistrationWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewRegistrationWindow(start, end time.Time) (RegistrationWindow, error) {
	if start.IsZero() || end.IsZero() {
		return RegistrationWindow{}, fmt.Errorf("%w: both bounds are required", ErrMalformedWindow)
	}
	if start.After(end) {
		return RegistrationWindow{}, fmt.Errorf("%w: start %s is after end %s", ErrMalformedWindow,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return RegistrationWindow{Start: start, End: end}, nil
}

// ParseRegistrationWindow decodes the "<start> - <end>" wire form, reading
// zone-less timestamps as UTC.
func ParseRegistrationWindow(raw string) (RegistrationWindow, error) {
	return ParseRegistrationWindowIn(raw, time.UTC)
}

func ParseRegistrationWindowIn(raw string, loc *time.Location) (RegistrationWindow, error) {
	parts := strings.Split(raw, windowSeparator)
	if len(parts) != 2 {
		return RegistrationWindow{}, fmt.Errorf("%w: expected exactly one %q separator in %q", ErrMalformedWindow, windowSeparator, raw)
	}

	start, err := parseWindowTime(parts[0], loc)
	if err != nil {
		return RegistrationWindow{}, err
	}
	end, err := parseWindowTime(parts[1], loc)
	if err != nil {
		return RegistrationWindow{}, err
	}
	return NewRegistrationWindow(start, end)
}

func parseWindowTime(raw string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty bound", ErrMalformedWindow)
	}
	for _, layout := range windowLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse %q as a date", ErrMalformedWindow, s)
}

// String renders the window back into the wire form.
func (w RegistrationWindow) String() string {
	return w.Start.Format(time.RFC3339) + windowSeparator + w.End.Format(time.RFC3339)
}

// StatusAt uses inclusive bounds: both start and end instants count as open.
func (w RegistrationWindow) StatusAt(now time.Time) WindowStatus {
	switch {
	case now.After(w.End):
		return WindowClosed
	case now.Before(w.Start):
		return WindowUpcoming
	default:
		return WindowOpen
	}
}

func BadgeFor(status WindowStatus) (badge.Badge, error) {
	switch status {
	case WindowOpen:
		return badge.Badge{Color: badge.ColorSuccess, Icon: "door-open", Label: string(WindowOpen)}, nil
	case WindowClosed:
		return badge.Badge{Color: badge.ColorDanger, Icon: "door", Label: string(WindowClosed)}, nil
	case WindowUpcoming:
		return badge.Badge{Color: badge.ColorDefault, Icon: "hourglass", Label: string(WindowUpcoming)}, nil
	default:
		return badge.Badge{}, fmt.Errorf("unknown window status %q", string(status))
	}
}
