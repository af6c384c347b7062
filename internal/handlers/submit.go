package handlers

//go:generate mockgen -source=submit.go -destination=mock_submit.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sbilibin2017/volunteer-hours/internal/logger"
	"github.com/sbilibin2017/volunteer-hours/internal/middlewares"
	"github.com/sbilibin2017/volunteer-hours/internal/services"
)

// Submitter defines the interface for recording volunteer hours.
type Submitter interface {
	Submit(ctx context.Context, ownerID int64, eventName, date string, hoursWorked float64, description string) (int64, error)
}

// SubmitRequest holds the submission form.
type SubmitRequest struct {
	EventName   string `validate:"required"`
	Date        string `validate:"required"`
	HoursWorked string `validate:"required,numeric"`
	Description string
}

// NewSubmitHandler returns a command that records hours for the logged-in user.
func NewSubmitHandler(svc Submitter, in Prompter, out io.Writer) middlewares.Command {
	return func(ctx context.Context) error {
		session, ok := middlewares.SessionFromContext(ctx)
		if !ok {
			return middlewares.ErrNotLoggedIn
		}

		var (
			req SubmitRequest
			err error
		)
		if req.EventName, err = in.Text("Event name"); err != nil {
			return err
		}
		if req.Date, err = in.Text("Date (YYYY-MM-DD)"); err != nil {
			return err
		}
		if req.HoursWorked, err = in.Text("Hours worked"); err != nil {
			return err
		}
		if req.Description, err = in.Text("Description (optional)"); err != nil {
			return err
		}

		if err := validateRequest(req); err != nil {
			fmt.Fprintln(out, "Error:", err)
			return err
		}
		hours, err := strconv.ParseFloat(req.HoursWorked, 64)
		if err != nil {
			fmt.Fprintln(out, "Error: hours worked must be a number")
			return err
		}

		hourID, err := svc.Submit(ctx, session.UserID, req.EventName, req.Date, hours, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidHours),
				errors.Is(err, services.ErrUserNotFound):
				fmt.Fprintln(out, "Error:", err)
			default:
				logger.Log.Errorw("internal error", "err", err)
				fmt.Fprintln(out, "Error: Internal error")
			}
			return err
		}

		fmt.Fprintf(out, "Success: Hours submitted for approval (entry #%d)\n", hourID)
		return nil
	}
}
