package handlers

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sbilibin2017/volunteer-hours/internal/logger"
	"github.com/sbilibin2017/volunteer-hours/internal/middlewares"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
	"github.com/sbilibin2017/volunteer-hours/internal/services"
)

// Authenticator defines the interface that the login service must implement.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (int64, models.Role, error)
}

// SessionHolder keeps the in-memory session of the terminal.
type SessionHolder interface {
	Set(s *models.Session)
	Clear()
}

// NewLoginHandler returns a command that authenticates a user and opens a session.
func NewLoginHandler(svc Authenticator, sessions SessionHolder, in Prompter, out io.Writer) middlewares.Command {
	return func(ctx context.Context) error {
		email, err := in.Text("Email")
		if err != nil {
			return err
		}
		password, err := in.Password("Password")
		if err != nil {
			return err
		}

		userID, role, err := svc.Authenticate(ctx, email, password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				fmt.Fprintln(out, "Login Failed: Invalid credentials")
			} else {
				logger.Log.Errorw("internal error", "err", err)
				fmt.Fprintln(out, "Login Failed: Internal error")
			}
			return err
		}

		session := &models.Session{ID: uuid.New(), UserID: userID, Role: role}
		sessions.Set(session)
		logger.Log.Infow("session opened", "session_id", session.ID, "user_id", userID, "role", role)

		fmt.Fprintf(out, "Login Success: Logged in as %s\n", role)
		return nil
	}
}

// NewLogoutHandler returns a command that drops the current session.
func NewLogoutHandler(sessions SessionHolder, out io.Writer) middlewares.Command {
	return func(ctx context.Context) error {
		if s, ok := middlewares.SessionFromContext(ctx); ok {
			logger.Log.Infow("session closed", "session_id", s.ID, "user_id", s.UserID)
		}
		sessions.Clear()
		fmt.Fprintln(out, "Logged out")
		return nil
	}
}
