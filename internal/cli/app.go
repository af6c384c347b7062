package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/volunteer-hours/internal/handlers"
	"github.com/sbilibin2017/volunteer-hours/internal/logger"
	"github.com/sbilibin2017/volunteer-hours/internal/middlewares"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
)

// AccountService is the account store as seen by the terminal.
type AccountService interface {
	handlers.Registerer
	handlers.Authenticator
}

// LedgerService is the hours ledger as seen by the terminal.
type LedgerService interface {
	handlers.Submitter
	handlers.OwnerLister
	handlers.PendingLister
	handlers.Decider
}

// App binds every terminal command to its middleware chain.
type App struct {
	sessions *SessionStore

	register middlewares.Command
	login    middlewares.Command
	logout   middlewares.Command
	submit   middlewares.Command
	myHours  middlewares.Command
	pending  middlewares.Command
	approve  middlewares.Command
	reject   middlewares.Command
}

// NewApp wires the handlers. Commands that touch the database run inside a
// transaction on db. Volunteers get the submission commands and Admins get
// the review commands.
func NewApp(db *sqlx.DB, accounts AccountService, ledger LedgerService, in handlers.Prompter, out io.Writer) *App {
	a := &App{sessions: &SessionStore{}}

	tx := middlewares.TxMiddleware(db)
	volunteer := middlewares.RequireRole(models.RoleVolunteer)
	admin := middlewares.RequireRole(models.RoleAdmin)

	a.register = command("register", handlers.NewRegisterHandler(accounts, in, out), tx)
	a.login = command("login", handlers.NewLoginHandler(accounts, a.sessions, in, out), tx)
	a.logout = command("logout", handlers.NewLogoutHandler(a.sessions, out), middlewares.AuthMiddleware())
	a.submit = command("submit", handlers.NewSubmitHandler(ledger, in, out), volunteer, tx)
	a.myHours = command("hours", handlers.NewMyHoursHandler(ledger, out), volunteer, tx)
	a.pending = command("pending", handlers.NewPendingHandler(ledger, out), admin, tx)
	a.approve = command("approve", handlers.NewDecideHandler(ledger, models.StatusApproved, in, out), admin, tx)
	a.reject = command("reject", handlers.NewDecideHandler(ledger, models.StatusRejected, in, out), admin, tx)

	return a
}

func command(name string, cmd middlewares.Command, mws ...middlewares.Middleware) middlewares.Command {
	return middlewares.Chain(cmd, append([]middlewares.Middleware{middlewares.LoggingMiddleware(logger.Log, name)}, mws...)...)
}

// run executes cmd with the current session attached to ctx.
func (a *App) run(ctx context.Context, cmd middlewares.Command) error {
	return cmd(middlewares.WithSession(ctx, a.sessions.Current()))
}

func (a *App) role() models.Role {
	if s := a.sessions.Current(); s != nil {
		return s.Role
	}
	return ""
}

func (a *App) status() string {
	s := a.sessions.Current()
	if s == nil {
		return "guest"
	}
	return fmt.Sprintf("user #%d %s", s.UserID, s.Role)
}

func (a *App) Register(ctx context.Context) error { return a.run(ctx, a.register) }
func (a *App) Login(ctx context.Context) error    { return a.run(ctx, a.login) }
func (a *App) Logout(ctx context.Context) error   { return a.run(ctx, a.logout) }
func (a *App) Submit(ctx context.Context) error   { return a.run(ctx, a.submit) }
func (a *App) MyHours(ctx context.Context) error  { return a.run(ctx, a.myHours) }
func (a *App) Pending(ctx context.Context) error  { return a.run(ctx, a.pending) }
func (a *App) Approve(ctx context.Context) error  { return a.run(ctx, a.approve) }
func (a *App) Reject(ctx context.Context) error   { return a.run(ctx, a.reject) }
