package cli

import "github.com/sbilibin2017/volunteer-hours/internal/models"

// SessionStore holds the identity of the logged-in user, if any.
type SessionStore struct {
	current *models.Session
}

// Set replaces the current session.
func (s *SessionStore) Set(session *models.Session) {
	s.current = session
}

// Clear forgets the current session.
func (s *SessionStore) Clear() {
	s.current = nil
}

// Current returns the current session or nil.
func (s *SessionStore) Current() *models.Session {
	return s.current
}
