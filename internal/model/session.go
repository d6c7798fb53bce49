package model

import "time"

// Session represents who is currently authenticated.
// A session holds at most one identity; an empty Identity means
// unauthenticated, and every ledger operation rejects it.
type Session struct {
	Token     string
	Identity  string // authenticated username
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Authenticated reports whether the session carries an identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.Identity != ""
}
