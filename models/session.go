package models

import "time"

// Session is the authenticated identity held for the current login.
// It is created by a successful login or registration, mirrored into the
// local store with an expiry, and destroyed on logout or failed validation.
type Session struct {
	// User is the identity record returned by the backend.
	User User `json:"user"`

	// Token is the opaque bearer token for authenticated calls.
	// Its content is never interpreted beyond an optional expiry peek.
	Token string `json:"token"`

	// ExpiresAt is the local expiry deadline of the persisted session.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session's local deadline has passed at now.
// A zero ExpiresAt means the session never expires locally.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
