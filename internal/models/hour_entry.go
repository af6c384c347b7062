package models

// Status is the lifecycle state of an hour entry.
type Status string

// Entry statuses
const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// IsDecision reports whether s is a status an admin may assign.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// HourEntryDB represents a row of the VolunteerHours table
type HourEntryDB struct {
	HourID      int64   `json:"hour_id" db:"hour_id"`           // Primary key, assigned by the store
	UserID      int64   `json:"user_id" db:"user_id"`           // Submitter
	EventName   string  `json:"event_name" db:"event_name"`     // Free text
	Date        string  `json:"date" db:"date"`                 // Stored verbatim, never parsed
	HoursWorked float64 `json:"hours_worked" db:"hours_worked"` // Hours claimed
	Description string  `json:"description" db:"description"`   // Optional free text
	Status      Status  `json:"status" db:"status"`             // Pending, Approved or Rejected
}

// OwnerHourEntry is the volunteer's view of one of their own submissions.
type OwnerHourEntry struct {
	HourID      int64   `json:"hour_id" db:"hour_id"`
	EventName   string  `json:"event_name" db:"event_name"`
	Date        string  `json:"date" db:"date"`
	HoursWorked float64 `json:"hours_worked" db:"hours_worked"`
	Status      Status  `json:"status" db:"status"`
}

// PendingHourEntry is the admin's view of an entry awaiting a decision.
// It carries no submitter information.
type PendingHourEntry struct {
	HourID      int64   `json:"hour_id" db:"hour_id"`
	EventName   string  `json:"event_name" db:"event_name"`
	Date        string  `json:"date" db:"date"`
	HoursWorked float64 `json:"hours_worked" db:"hours_worked"`
}
