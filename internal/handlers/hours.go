package handlers

//go:generate mockgen -source=hours.go -destination=mock_hours.go -package=handlers

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/sbilibin2017/volunteer-hours/internal/logger"
	"github.com/sbilibin2017/volunteer-hours/internal/middlewares"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
)

// OwnerLister defines the interface for listing a user's own submissions.
type OwnerLister interface {
	ListForOwner(ctx context.Context, ownerID int64) ([]models.OwnerHourEntry, error)
	Totals(ctx context.Context, ownerID int64) (map[models.Status]float64, error)
}

// PendingLister defines the interface for listing entries awaiting a decision.
type PendingLister interface {
	ListPending(ctx context.Context) ([]models.PendingHourEntry, error)
}

// NewMyHoursHandler returns a command that prints the logged-in user's
// submissions followed by their hours per status.
func NewMyHoursHandler(svc OwnerLister, out io.Writer) middlewares.Command {
	return func(ctx context.Context) error {
		session, ok := middlewares.SessionFromContext(ctx)
		if !ok {
			return middlewares.ErrNotLoggedIn
		}

		entries, err := svc.ListForOwner(ctx, session.UserID)
		if err != nil {
			logger.Log.Errorw("internal error", "err", err)
			fmt.Fprintln(out, "Error: Internal error")
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "No submissions yet")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEVENT\tDATE\tHOURS\tSTATUS")
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.HourID, e.EventName, e.Date, formatHours(e.HoursWorked), e.Status)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		totals, err := svc.Totals(ctx, session.UserID)
		if err != nil {
			logger.Log.Errorw("internal error", "err", err)
			fmt.Fprintln(out, "Error: Internal error")
			return err
		}
		fmt.Fprintf(out, "Total hours: %s approved, %s pending, %s rejected\n",
			formatHours(totals[models.StatusApproved]),
			formatHours(totals[models.StatusPending]),
			formatHours(totals[models.StatusRejected]),
		)
		return nil
	}
}

// NewPendingHandler returns a command that prints every Pending entry.
func NewPendingHandler(svc PendingLister, out io.Writer) middlewares.Command {
	return func(ctx context.Context) error {
		entries, err := svc.ListPending(ctx)
		if err != nil {
			logger.Log.Errorw("internal error", "err", err)
			fmt.Fprintln(out, "Error: Internal error")
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "No pending submissions")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEVENT\tDATE\tHOURS")
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.HourID, e.EventName, e.Date, formatHours(e.HoursWorked))
		}
		return w.Flush()
	}
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
