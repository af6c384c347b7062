package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMigrated(t *testing.T, foreignKeys bool) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"), foreignKeys)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, RunMigrations(ctx, db))
	return db
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "file:volunteer_hours.db?_foreign_keys=0", DSN("volunteer_hours.db", false))
	assert.Equal(t, "file::memory:?_foreign_keys=1", DSN(":memory:", true))
	assert.Equal(t, "file:/var/lib/vh/data%3F1.db?_foreign_keys=1", DSN("/var/lib/vh/data?1.db", true))
	assert.Equal(t, "file:a%23b%25c.db?_foreign_keys=0", DSN("a#b%c.db", false))
}

func TestOpen_PathWithURIDelimiters(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "data?1#x.db")

	db, err := Open(ctx, path, true)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, RunMigrations(ctx, db))

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file must keep its full name")

	var fk int
	require.NoError(t, db.Get(&fk, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, fk)
}

func TestRunMigrations_CreatesTables(t *testing.T) {
	db := openMigrated(t, false)

	var tables []string
	err := db.Select(&tables, `SELECT name FROM sqlite_master WHERE type='table' AND name IN ('Users', 'VolunteerHours') ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Users", "VolunteerHours"}, tables)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openMigrated(t, false)
	assert.NoError(t, RunMigrations(context.Background(), db))
}

func TestRunMigrations_StatusDefaultsToPending(t *testing.T) {
	db := openMigrated(t, false)

	_, err := db.Exec(`INSERT INTO VolunteerHours (user_id, event_name, date, hours_worked, description) VALUES (1, 'Food Bank', '2024-05-01', 2, '')`)
	require.NoError(t, err)

	var status string
	require.NoError(t, db.Get(&status, `SELECT status FROM VolunteerHours WHERE hour_id = 1`))
	assert.Equal(t, "Pending", status)
}

func TestIsUniqueViolation(t *testing.T) {
	db := openMigrated(t, false)

	insert := `INSERT INTO Users (name, email, password, role) VALUES ('Ann', 'ann@example.com', 'x', 'Volunteer')`
	_, err := db.Exec(insert)
	require.NoError(t, err)

	_, err = db.Exec(insert)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.True(t, IsUniqueViolation(fmt.Errorf("save user: %w", err)))
	assert.False(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(errors.New("UNIQUE constraint failed")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	db := openMigrated(t, true)

	_, err := db.Exec(`INSERT INTO VolunteerHours (user_id, event_name, date, hours_worked, description) VALUES (42, 'Park', '2024-05-01', 1, '')`)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))

	var sqliteErr sqlite3.Error
	require.True(t, errors.As(err, &sqliteErr))
	assert.Equal(t, sqlite3.ErrConstraint, sqliteErr.Code)
}

func TestForeignKeysOffByDefault(t *testing.T) {
	db := openMigrated(t, false)

	_, err := db.Exec(`INSERT INTO VolunteerHours (user_id, event_name, date, hours_worked, description) VALUES (42, 'Park', '2024-05-01', 1, '')`)
	assert.NoError(t, err)
}
