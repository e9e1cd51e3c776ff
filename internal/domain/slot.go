package domain

import "time"

// TimeSlot represents a start time offered by the salon availability endpoint
type TimeSlot struct {
	ID        string
	StartTime string // as sent by the remote API, e.g. "10:00" or "10:00 AM"
	EndTime   string
	Available bool
}

// SelectedSlot is the anchor of a booking chain
type SelectedSlot struct {
	Start       time.Time
	DisplayTime string
	SlotID      string
}

// NewSelectedSlot builds an anchor from a calendar date and a slot offered on that date.
// The slot start time accepts both 24h ("15:04") and 12h ("03:04 PM") notations.
func NewSelectedSlot(date time.Time, slot TimeSlot) (*SelectedSlot, error) {
	clock, err := ParseClock(slot.StartTime)
	if err != nil {
		return nil, err
	}

	start := time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, date.Location())

	return &SelectedSlot{
		Start:       start,
		DisplayTime: start.Format(DisplayTimeFormat),
		SlotID:      slot.ID,
	}, nil
}

// ParseClock parses a time of day in one of the notations used by the remote API
func ParseClock(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range []string{TimeFormat, DisplayTimeFormat, "3:04 PM", "15:04:05"} {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// AvailabilityResult is the salon capacity answer for a cumulative duration
type AvailabilityResult struct {
	Available bool
	Message   string
	Slots     []TimeSlot
}

// StartOfDay strips the time of day, keeping the location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable millisecond of the day
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
