// Package storage opens the local SQLite database and applies the embedded schema.
package storage

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/url"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/sbilibin2017/volunteer-hours/internal/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

const driverName = "sqlite3"

// DSN builds the SQLite data source name for the database file at path.
// The path is percent-encoded so '?', '#' and '%' stay part of the file name.
// SQLite leaves foreign keys off unless asked, so enforcement is opt-in.
func DSN(path string, foreignKeys bool) string {
	fk := 0
	if foreignKeys {
		fk = 1
	}
	escaped := (&url.URL{Path: path}).EscapedPath()
	return fmt.Sprintf("file:%s?_foreign_keys=%d", escaped, fk)
}

// Open connects to the SQLite file at path. The pool is capped at a single
// connection: one terminal session works against the file at a time.
func Open(ctx context.Context, path string, foreignKeys bool) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, driverName, DSN(path, foreignKeys))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

// RunMigrations applies every pending embedded migration.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{})

	if err := goose.SetDialect(driverName); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// IsUniqueViolation reports whether err comes from a UNIQUE constraint.
func IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// IsForeignKeyViolation reports whether err comes from a FOREIGN KEY constraint.
func IsForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

// gooseLogger routes goose output through the application logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	logger.Log.Infof(format, v...)
}

func (gooseLogger) Fatalf(format string, v ...any) {
	logger.Log.Fatalf(format, v...)
}
