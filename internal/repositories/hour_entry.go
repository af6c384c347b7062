package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/volunteer-hours/internal/logger"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
)

// HourEntryWriteRepository handles VolunteerHours write operations
type HourEntryWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHourEntryWriteRepository(db *sqlx.DB, txGetter TxGetter) *HourEntryWriteRepository {
	return &HourEntryWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new entry; status falls back to the column default (Pending).
func (r *HourEntryWriteRepository) Save(ctx context.Context, userID int64, eventName, date string, hoursWorked float64, description string) (int64, error) {
	const query = `
		INSERT INTO VolunteerHours (user_id, event_name, date, hours_worked, description)
		VALUES (?, ?, ?, ?, ?)
	`
	args := []any{userID, eventName, date, hoursWorked, description}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var hourID int64
	if err == nil {
		hourID, err = res.LastInsertId()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", hourID,
		"error", err,
	)

	return hourID, err
}

// UpdateStatus sets the status of an entry unconditionally and reports how many rows changed.
func (r *HourEntryWriteRepository) UpdateStatus(ctx context.Context, hourID int64, status models.Status) (int64, error) {
	const query = `
		UPDATE VolunteerHours
		SET status = ?
		WHERE hour_id = ?
	`
	args := []any{status, hourID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if err == nil {
		rowsAffected, err = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// HourEntryReadRepository handles VolunteerHours read operations
type HourEntryReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHourEntryReadRepository(db *sqlx.DB, txGetter TxGetter) *HourEntryReadRepository {
	return &HourEntryReadRepository{db: db, txGetter: txGetter}
}

// ListByUserID returns the user's entries in insertion order.
func (r *HourEntryReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.OwnerHourEntry, error) {
	const query = `
		SELECT hour_id, event_name, date, hours_worked, status
		FROM VolunteerHours
		WHERE user_id = ?
		ORDER BY hour_id
	`

	entries := []models.OwnerHourEntry{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &entries, query, userID)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{userID},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// SumByStatus returns the user's hours worked as a map[status]total.
// Statuses with no entries are absent from the map.
func (r *HourEntryReadRepository) SumByStatus(ctx context.Context, userID int64) (map[models.Status]float64, error) {
	const query = `
		SELECT status, SUM(hours_worked) AS total
		FROM VolunteerHours
		WHERE user_id = ?
		GROUP BY status
	`

	var rows []struct {
		Status models.Status `db:"status"`
		Total  float64       `db:"total"`
	}

	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, userID)

	// Convert to map
	totals := make(map[models.Status]float64, len(rows))
	for _, row := range rows {
		totals[row.Status] = row.Total
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{userID},
		"result", totals,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return totals, nil
}

// ListPending returns every Pending entry across all users in insertion order.
func (r *HourEntryReadRepository) ListPending(ctx context.Context) ([]models.PendingHourEntry, error) {
	const query = `
		SELECT hour_id, event_name, date, hours_worked
		FROM VolunteerHours
		WHERE status = ?
		ORDER BY hour_id
	`

	entries := []models.PendingHourEntry{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &entries, query, models.StatusPending)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{models.StatusPending},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByID returns a single entry, or nil without error when absent.
func (r *HourEntryReadRepository) GetByID(ctx context.Context, hourID int64) (*models.HourEntryDB, error) {
	const query = `
		SELECT hour_id, user_id, event_name, date, hours_worked, description, status
		FROM VolunteerHours
		WHERE hour_id = ?
	`

	var entry models.HourEntryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &entry, query, hourID)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{hourID},
		"result", entry.Status,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
