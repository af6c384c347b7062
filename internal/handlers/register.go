package handlers

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sbilibin2017/volunteer-hours/internal/logger"
	"github.com/sbilibin2017/volunteer-hours/internal/middlewares"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
	"github.com/sbilibin2017/volunteer-hours/internal/services"
)

// Registerer defines the interface that the account service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string, role models.Role) (int64, error)
}

// RegisterRequest holds the registration form.
type RegisterRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string
}

// NewRegisterHandler returns a command that creates a Volunteer account.
// Admin accounts are only created from the admins file at startup.
func NewRegisterHandler(svc Registerer, in Prompter, out io.Writer) middlewares.Command {
	return func(ctx context.Context) error {
		var (
			req RegisterRequest
			err error
		)
		if req.Name, err = in.Text("Name"); err != nil {
			return err
		}
		if req.Email, err = in.Text("Email"); err != nil {
			return err
		}
		if req.Password, err = in.Password("Password"); err != nil {
			return err
		}

		if err := validateRequest(req); err != nil {
			fmt.Fprintln(out, "Error:", err)
			return err
		}

		if _, err := svc.Register(ctx, req.Name, req.Email, req.Password, models.RoleVolunteer); err != nil {
			switch {
			case errors.Is(err, services.ErrDuplicateEmail):
				fmt.Fprintln(out, "Error: Email already exists")
			case errors.Is(err, services.ErrNameRequired),
				errors.Is(err, services.ErrEmailRequired):
				fmt.Fprintln(out, "Error:", err)
			default:
				logger.Log.Errorw("internal error", "err", err)
				fmt.Fprintln(out, "Error: Internal error")
			}
			return err
		}

		fmt.Fprintln(out, "Success: Account created successfully")
		return nil
	}
}
