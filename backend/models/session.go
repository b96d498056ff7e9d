package models

import "time"

// Session is the server-side record behind an opaque bearer token.
// A session is valid while the current time is before ExpiresAt; expired
// entries are removed lazily on their next lookup.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
