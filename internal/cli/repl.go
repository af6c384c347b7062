package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/volunteer-hours/internal/middlewares"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
)

// Test seams for user-facing output. In tests, replace them with stubs.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	role() models.Role
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Submit(ctx context.Context) error
	MyHours(ctx context.Context) error
	Pending(ctx context.Context) error
	Approve(ctx context.Context) error
	Reject(ctx context.Context) error
}

// Run greets the user and serves commands from scanner until EOF, "exit"
// or cancellation of ctx.
func Run(ctx context.Context, app *App, scanner *bufio.Scanner) {
	printlnFn("Volunteer Hours Tracker (type 'help' for commands)")
	runREPL(ctx, app, app.status, scanner)
}

// runREPL reads a line from scanner, treats the first token as the command
// and dispatches it to a.
//
//	Guest:     register, login, exit
//	Volunteer: submit, hours, logout, exit
//	Admin:     pending, approve, reject, logout, exit
//
// Handlers print their own outcome. Only authorization failures raised by
// the middleware chain are reported here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printFn(fmt.Sprintf("vh (%s)> ", statusFn()))
		if !scanner.Scan() {
			printlnFn()
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText(a.role()))
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "submit":
			err = a.Submit(ctx)
		case "hours":
			err = a.MyHours(ctx)
		case "pending":
			err = a.Pending(ctx)
		case "approve":
			err = a.Approve(ctx)
		case "reject":
			err = a.Reject(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if errors.Is(err, middlewares.ErrNotLoggedIn) || errors.Is(err, middlewares.ErrForbidden) {
			printlnFn("Error:", err)
		}
	}
}

func helpText(role models.Role) string {
	switch role {
	case models.RoleVolunteer:
		return "Available commands: submit, hours, logout, exit"
	case models.RoleAdmin:
		return "Available commands: pending, approve, reject, logout, exit"
	default:
		return "Available commands: register, login, exit"
	}
}
