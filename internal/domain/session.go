package domain

import "time"

// SessionContext carries the bearer credential and the salon identity derived from it.
// Resolved once per session and passed to every gateway call.
type SessionContext struct {
	Token   string
	SalonID string
	Mobile  string
	Name    string
}

// IsAuthenticated returns true if a bearer credential is present
func (s *SessionContext) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

// HasSalon returns true if the salon identity claim was resolved
func (s *SessionContext) HasSalon() bool {
	return s != nil && s.SalonID != ""
}

// Session is the server-side record of a dashboard login
type Session struct {
	ID        string
	Token     string
	SalonID   string
	Mobile    string
	Name      string
	CreatedAt time.Time
	ExpiresAt *time.Time
}

// Context returns the gateway-facing view of the session
func (s *Session) Context() *SessionContext {
	return &SessionContext{
		Token:   s.Token,
		SalonID: s.SalonID,
		Mobile:  s.Mobile,
		Name:    s.Name,
	}
}

// IsExpired returns true if the token expiry claim has passed
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}
