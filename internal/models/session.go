package models

import "github.com/google/uuid"

// Session is the in-memory identity held by the terminal after a successful login.
type Session struct {
	ID     uuid.UUID `json:"id"`      // Correlates log lines of one login
	UserID int64     `json:"user_id"` // Authenticated user
	Role   Role      `json:"role"`    // Role looked up at login
}
