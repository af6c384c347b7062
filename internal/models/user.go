package models

// Role is the access class of a user, fixed at registration.
type Role string

// Supported roles
const (
	RoleVolunteer Role = "Volunteer"
	RoleAdmin     Role = "Admin"
)

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	return r == RoleVolunteer || r == RoleAdmin
}

// UserDB represents a row of the Users table
type UserDB struct {
	UserID   int64  `json:"user_id" db:"user_id"` // Primary key, assigned by the store
	Name     string `json:"name" db:"name"`       // Display name
	Email    string `json:"email" db:"email"`     // Unique, case-sensitive email
	Password string `json:"-" db:"password"`      // Hex-encoded SHA-256 digest
	Role     Role   `json:"role" db:"role"`       // Volunteer or Admin
}
