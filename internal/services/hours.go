package services

//go:generate mockgen -source=hours.go -destination=mock_hours.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/volunteer-hours/internal/logger"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
)

var (
	// ErrUnauthorized is returned when a non-admin tries to decide on an entry.
	ErrUnauthorized = errors.New("only admins can approve or reject entries")
	// ErrInvalidDecision is returned for a decision other than Approved or Rejected.
	ErrInvalidDecision = errors.New("decision must be Approved or Rejected")
	// ErrEntryNotFound is returned in strict mode when the entry does not exist.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrInvalidState is returned in strict mode when the entry is no longer Pending.
	ErrInvalidState = errors.New("entry is not pending")
	// ErrInvalidHours is returned in strict mode for a non-positive hour count.
	ErrInvalidHours = errors.New("hours worked must be greater than zero")
	// ErrUserNotFound is returned in strict mode when the submitter does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// HourEntryWriter defines write operations for hour entries.
type HourEntryWriter interface {
	Save(ctx context.Context, userID int64, eventName, date string, hoursWorked float64, description string) (int64, error) // Inserts a Pending entry
	UpdateStatus(ctx context.Context, hourID int64, status models.Status) (int64, error)                                  // Returns rows affected
}

// HourEntryReader defines read operations for hour entries.
type HourEntryReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.OwnerHourEntry, error)
	SumByStatus(ctx context.Context, userID int64) (map[models.Status]float64, error)
	ListPending(ctx context.Context) ([]models.PendingHourEntry, error)
	GetByID(ctx context.Context, hourID int64) (*models.HourEntryDB, error)
}

// OwnerReader resolves submitters; used only in strict mode.
type OwnerReader interface {
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// HoursService records volunteer submissions and admin decisions.
//
// In strict mode it also rejects non-positive hours and unknown owners on
// submit, and refuses to decide on entries that are missing or no longer
// Pending. Otherwise any input is stored and decisions overwrite
// unconditionally.
type HoursService struct {
	writer HourEntryWriter
	reader HourEntryReader
	owners OwnerReader
	strict bool
}

// NewHoursService creates a new HoursService.
func NewHoursService(writer HourEntryWriter, reader HourEntryReader, owners OwnerReader, strict bool) *HoursService {
	return &HoursService{
		writer: writer,
		reader: reader,
		owners: owners,
		strict: strict,
	}
}

// Submit records hours worked by ownerID and returns the new entry ID.
func (s *HoursService) Submit(ctx context.Context, ownerID int64, eventName, date string, hoursWorked float64, description string) (int64, error) {
	if s.strict {
		if hoursWorked <= 0 {
			logger.Log.Errorw("invalid hours", "userID", ownerID, "hours", hoursWorked)
			return 0, ErrInvalidHours
		}
		owner, err := s.owners.GetByID(ctx, ownerID)
		if err != nil {
			logger.Log.Errorw("failed to get owner", "userID", ownerID, "error", err)
			return 0, fmt.Errorf("get owner: %w", err)
		}
		if owner == nil {
			logger.Log.Errorw("owner does not exist", "userID", ownerID)
			return 0, ErrUserNotFound
		}
	}

	hourID, err := s.writer.Save(ctx, ownerID, eventName, date, hoursWorked, description)
	if err != nil {
		logger.Log.Errorw("failed to save hour entry", "userID", ownerID, "event", eventName, "error", err)
		return 0, fmt.Errorf("save hour entry: %w", err)
	}

	logger.Log.Infow("hour entry submitted", "userID", ownerID, "hourID", hourID, "hours", hoursWorked)
	return hourID, nil
}

// ListForOwner returns all of ownerID's entries; an empty slice when there are none.
func (s *HoursService) ListForOwner(ctx context.Context, ownerID int64) ([]models.OwnerHourEntry, error) {
	entries, err := s.reader.ListByUserID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list hour entries", "userID", ownerID, "error", err)
		return nil, fmt.Errorf("list hour entries: %w", err)
	}
	if entries == nil {
		entries = []models.OwnerHourEntry{}
	}
	return entries, nil
}

// Totals returns the owner's hours worked per status. Every status is
// present in the result, zero when the owner has no such entries.
func (s *HoursService) Totals(ctx context.Context, ownerID int64) (map[models.Status]float64, error) {
	sums, err := s.reader.SumByStatus(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to sum hour entries", "userID", ownerID, "error", err)
		return nil, fmt.Errorf("sum hour entries: %w", err)
	}

	totals := map[models.Status]float64{
		models.StatusPending:  0,
		models.StatusApproved: 0,
		models.StatusRejected: 0,
	}
	for status, hours := range sums {
		totals[status] += hours
	}
	return totals, nil
}

// ListPending returns every entry awaiting a decision, across all owners.
func (s *HoursService) ListPending(ctx context.Context) ([]models.PendingHourEntry, error) {
	entries, err := s.reader.ListPending(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list pending entries", "error", err)
		return nil, fmt.Errorf("list pending entries: %w", err)
	}
	if entries == nil {
		entries = []models.PendingHourEntry{}
	}
	return entries, nil
}

// Decide sets the status of hourID to decision on behalf of a caller holding callerRole.
// Strict mode reads and writes the entry separately, so callers should run it
// inside a transaction.
func (s *HoursService) Decide(ctx context.Context, callerRole models.Role, hourID int64, decision models.Status) error {
	if callerRole != models.RoleAdmin {
		logger.Log.Errorw("decision by non-admin", "role", callerRole, "hourID", hourID)
		return ErrUnauthorized
	}
	if !decision.IsDecision() {
		logger.Log.Errorw("invalid decision", "hourID", hourID, "decision", decision)
		return ErrInvalidDecision
	}

	if s.strict {
		entry, err := s.reader.GetByID(ctx, hourID)
		if err != nil {
			logger.Log.Errorw("failed to get hour entry", "hourID", hourID, "error", err)
			return fmt.Errorf("get hour entry: %w", err)
		}
		if entry == nil {
			logger.Log.Errorw("hour entry does not exist", "hourID", hourID)
			return ErrEntryNotFound
		}
		if entry.Status != models.StatusPending {
			logger.Log.Errorw("hour entry already decided", "hourID", hourID, "status", entry.Status)
			return ErrInvalidState
		}
	}

	rows, err := s.writer.UpdateStatus(ctx, hourID, decision)
	if err != nil {
		logger.Log.Errorw("failed to update hour entry status", "hourID", hourID, "decision", decision, "error", err)
		return fmt.Errorf("update hour entry status: %w", err)
	}
	if rows == 0 {
		logger.Log.Warnw("decision matched no entry", "hourID", hourID)
	}

	logger.Log.Infow("hour entry decided", "hourID", hourID, "decision", decision)
	return nil
}
