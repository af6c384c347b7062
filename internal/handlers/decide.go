package handlers

//go:generate mockgen -source=decide.go -destination=mock_decide.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sbilibin2017/volunteer-hours/internal/logger"
	"github.com/sbilibin2017/volunteer-hours/internal/middlewares"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
	"github.com/sbilibin2017/volunteer-hours/internal/services"
)

// Decider defines the interface for approving or rejecting an entry.
type Decider interface {
	Decide(ctx context.Context, callerRole models.Role, hourID int64, decision models.Status) error
}

// DecideRequest holds the decision form.
type DecideRequest struct {
	EntryID string `validate:"required,number"`
}

// NewDecideHandler returns a command that applies decision to an entry chosen by the user.
// The caller role comes from the session, so the ledger makes the final authorization call.
func NewDecideHandler(svc Decider, decision models.Status, in Prompter, out io.Writer) middlewares.Command {
	return func(ctx context.Context) error {
		session, ok := middlewares.SessionFromContext(ctx)
		if !ok {
			return middlewares.ErrNotLoggedIn
		}

		var (
			req DecideRequest
			err error
		)
		if req.EntryID, err = in.Text("Entry ID"); err != nil {
			return err
		}
		if err := validateRequest(req); err != nil {
			fmt.Fprintln(out, "Error:", err)
			return err
		}
		hourID, err := strconv.ParseInt(req.EntryID, 10, 64)
		if err != nil {
			fmt.Fprintln(out, "Error: entry id is out of range")
			return err
		}

		if err := svc.Decide(ctx, session.Role, hourID, decision); err != nil {
			switch {
			case errors.Is(err, services.ErrUnauthorized),
				errors.Is(err, services.ErrInvalidDecision),
				errors.Is(err, services.ErrEntryNotFound),
				errors.Is(err, services.ErrInvalidState):
				fmt.Fprintln(out, "Error:", err)
			default:
				logger.Log.Errorw("internal error", "err", err)
				fmt.Fprintln(out, "Error: Internal error")
			}
			return err
		}

		fmt.Fprintf(out, "Success: Entry #%d marked %s\n", hourID, decision)
		return nil
	}
}
