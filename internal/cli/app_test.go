package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/volunteer-hours/internal/middlewares"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
	"github.com/sbilibin2017/volunteer-hours/internal/repositories"
	"github.com/sbilibin2017/volunteer-hours/internal/services"
	"github.com/sbilibin2017/volunteer-hours/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp builds the full stack on a fresh SQLite file with one Admin account.
func newTestApp(t *testing.T, script string, strict bool) (*App, *bufio.Scanner, *bytes.Buffer, *sqlx.DB) {
	t.Helper()

	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "volunteer_hours.db"), strict)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.RunMigrations(ctx, db))

	txGetter := middlewares.GetTxFromContext
	userRead := repositories.NewUserReadRepository(db, txGetter)
	auth := services.NewAuthService(userRead, repositories.NewUserWriteRepository(db, txGetter))
	hours := services.NewHoursService(
		repositories.NewHourEntryWriteRepository(db, txGetter),
		repositories.NewHourEntryReadRepository(db, txGetter),
		userRead,
		strict,
	)

	_, err = auth.Register(ctx, "Root", "admin@example.com", "root", models.RoleAdmin)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	origPrint, origPrintln := printFn, printlnFn
	printFn = func(a ...any) (int, error) { return fmt.Fprint(out, a...) }
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(out, a...) }
	t.Cleanup(func() {
		printFn = origPrint
		printlnFn = origPrintln
	})

	console := NewConsole(strings.NewReader(script), out)
	return NewApp(db, auth, hours, console, out), console.Scanner(), out, db
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func TestApp_VolunteerAndAdminSession(t *testing.T) {
	script := lines(
		"register", "Alice", "alice@example.com", "pw",
		"register", "Alice Again", "alice@example.com", "other",
		"login", "alice@example.com", "wrong",
		"login", "alice@example.com", "pw",
		"submit", "Food Drive", "2024-05-01", "3.5", "sorting cans",
		"pending",
		"approve",
		"logout",
		"login", "admin@example.com", "root",
		"submit",
		"pending",
		"approve", "1",
		"pending",
		"logout",
		"login", "alice@example.com", "pw",
		"hours",
		"exit",
	)

	app, scanner, out, db := newTestApp(t, script, false)
	Run(context.Background(), app, scanner)

	got := out.String()
	assert.Contains(t, got, "Volunteer Hours Tracker (type 'help' for commands)")
	assert.Contains(t, got, "Success: Account created successfully")
	assert.Contains(t, got, "Error: Email already exists")
	assert.Contains(t, got, "Login Failed: Invalid credentials")
	assert.Contains(t, got, "Login Success: Logged in as Volunteer")
	assert.Contains(t, got, "Success: Hours submitted for approval (entry #1)")
	assert.Equal(t, 3, strings.Count(got, "Error: this command is not available for your role"))
	assert.Contains(t, got, "Login Success: Logged in as Admin")
	assert.Contains(t, got, "1   Food Drive  2024-05-01  3.5")
	assert.Contains(t, got, "Success: Entry #1 marked Approved")
	assert.Contains(t, got, "No pending submissions")
	assert.Contains(t, got, "1   Food Drive  2024-05-01  3.5    Approved")
	assert.Contains(t, got, "Total hours: 3.5 approved, 0 pending, 0 rejected")
	assert.Contains(t, got, "Bye!")

	var users int
	require.NoError(t, db.Get(&users, "SELECT COUNT(*) FROM Users"))
	assert.Equal(t, 2, users)
}

func TestApp_StrictModeRefusesSecondDecision(t *testing.T) {
	script := lines(
		"login", "admin@example.com", "root",
		"logout",
		"register", "Bob", "bob@example.com", "pw",
		"login", "bob@example.com", "pw",
		"submit", "Shelter", "June", "0", "",
		"submit", "Shelter", "June", "4", "",
		"logout",
		"login", "admin@example.com", "root",
		"approve", "1",
		"reject", "1",
		"approve", "42",
		"exit",
	)

	app, scanner, out, db := newTestApp(t, script, true)
	Run(context.Background(), app, scanner)

	got := out.String()
	assert.Contains(t, got, "Error: hours worked must be greater than zero")
	assert.Contains(t, got, "Success: Hours submitted for approval (entry #1)")
	assert.Contains(t, got, "Success: Entry #1 marked Approved")
	assert.Contains(t, got, "Error: entry is not pending")
	assert.Contains(t, got, "Error: entry not found")

	var status string
	require.NoError(t, db.Get(&status, "SELECT status FROM VolunteerHours WHERE hour_id = 1"))
	assert.Equal(t, "Approved", status)
}

func TestApp_CommandsNeedLogin(t *testing.T) {
	app, scanner, out, _ := newTestApp(t, lines("submit", "hours", "logout", "help"), false)
	Run(context.Background(), app, scanner)

	assert.Equal(t, 3, strings.Count(out.String(), "Error: please log in first"))
	assert.Contains(t, out.String(), "Available commands: register, login, exit")
	assert.Contains(t, out.String(), "vh (guest)> ")
}

func TestSessionStore(t *testing.T) {
	var s SessionStore
	assert.Nil(t, s.Current())

	session := &models.Session{UserID: 4, Role: models.RoleAdmin}
	s.Set(session)
	assert.Same(t, session, s.Current())

	s.Clear()
	assert.Nil(t, s.Current())
}
