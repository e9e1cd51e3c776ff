package domain

import (
	"strings"
	"time"
)

// StatusCategory represents the lifecycle label of an appointment
type StatusCategory string

const (
	StatusConfirmed StatusCategory = "confirmed"
	StatusPending   StatusCategory = "pending"
	StatusDeclined  StatusCategory = "declined"
	StatusCancelled StatusCategory = "cancelled"
	StatusNoShow    StatusCategory = "no show"
	StatusOther     StatusCategory = "other"
)

// KnownStatuses список статусов, для которых ведется отдельный счетчик
var KnownStatuses = []StatusCategory{
	StatusConfirmed,
	StatusPending,
	StatusDeclined,
	StatusCancelled,
	StatusNoShow,
}

// CategoryOf maps a raw status string onto a category, case-insensitively.
// Unknown values fall into StatusOther.
func CategoryOf(status string) StatusCategory {
	normalized := StatusCategory(strings.ToLower(strings.TrimSpace(status)))
	for _, known := range KnownStatuses {
		if normalized == known {
			return known
		}
	}
	return StatusOther
}

// Customer of an appointment
type Customer struct {
	Username string
	Mobile   string
}

// BookedService is one service line of a fetched appointment
type BookedService struct {
	CustomName  string
	ServiceName string
}

// DisplayName falls back from the custom name to the catalog name
func (s BookedService) DisplayName() string {
	if strings.TrimSpace(s.CustomName) != "" {
		return s.CustomName
	}
	return s.ServiceName
}

// AppointmentRecord represents an appointment owned by the remote API
type AppointmentRecord struct {
	ID              string
	Date            time.Time // calendar date, zero if the server sent an unparseable value
	StartTime       string
	EndTime         string
	DurationMinutes int
	Amount          float64
	Status          string
	Customer        Customer
	Services        []BookedService
	ULID            string
}

// Category returns the status category of the appointment
func (a *AppointmentRecord) Category() StatusCategory {
	return CategoryOf(a.Status)
}

// ServiceNames returns the display names of all booked services joined by a space
func (a *AppointmentRecord) ServiceNames() string {
	names := make([]string, 0, len(a.Services))
	for _, s := range a.Services {
		names = append(names, s.DisplayName())
	}
	return strings.Join(names, " ")
}

// LongDate returns the date in long form, e.g. "Thursday, April 24, 2025"
func (a *AppointmentRecord) LongDate() string {
	if a.Date.IsZero() {
		return ""
	}
	return a.Date.Format(LongDateFormat)
}

// ServerAppointment is the appointment returned by create and confirm calls
type ServerAppointment struct {
	ID        string
	Status    string
	Date      string
	StartTime string
	EndTime   string
	Amount    float64
	ULID      string
}
