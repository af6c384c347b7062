package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/volunteer-hours/internal/logger"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
)

const redacted = "***"

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmailAndPassword looks a user up by email and password digest in one query.
// It returns nil without error when nothing matches.
func (r *UserReadRepository) GetByEmailAndPassword(ctx context.Context, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password, role
		FROM Users
		WHERE email = ? AND password = ?
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email, passwordHash)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{email, redacted},
		"result", user.UserID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given ID, or nil without error when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password, role
		FROM Users
		WHERE user_id = ?
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userID)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{userID},
		"result", user.UserID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user and returns the assigned ID. Email uniqueness is left
// to the table constraint.
func (r *UserWriteRepository) Save(ctx context.Context, name, email, passwordHash string, role models.Role) (int64, error) {
	const query = `
		INSERT INTO Users (name, email, password, role)
		VALUES (?, ?, ?, ?)
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, name, email, passwordHash, role)
	var userID int64
	if err == nil {
		userID, err = res.LastInsertId()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{name, email, redacted, role},
		"result", userID,
		"error", err,
	)

	return userID, err
}
