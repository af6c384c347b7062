package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/volunteer-hours/internal/storage"
	"github.com/stretchr/testify/require"
)

// setupSQLite opens a migrated SQLite file in a temp dir.
func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "volunteer_hours.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.RunMigrations(ctx, db))
	return db
}
