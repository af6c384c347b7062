package middlewares

import (
	"context"
	"errors"

	"github.com/sbilibin2017/volunteer-hours/internal/logger"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
)

var (
	// ErrNotLoggedIn is returned when a command needs a session and there is none.
	ErrNotLoggedIn = errors.New("please log in first")
	// ErrForbidden is returned when the session role may not run the command.
	ErrForbidden = errors.New("this command is not available for your role")
)

type sessionKey struct{}

// WithSession stores the current session in the context.
func WithSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext retrieves the session stored by WithSession.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*models.Session)
	return s, ok && s != nil
}

// AuthMiddleware rejects commands run without a logged-in session.
func AuthMiddleware() Middleware {
	return func(next Command) Command {
		return func(ctx context.Context) error {
			if _, ok := SessionFromContext(ctx); !ok {
				logger.Log.Errorw("authorization failed", "err", ErrNotLoggedIn)
				return ErrNotLoggedIn
			}
			return next(ctx)
		}
	}
}

// RequireRole only lets sessions holding one of roles through.
func RequireRole(roles ...models.Role) Middleware {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next Command) Command {
		return func(ctx context.Context) error {
			s, ok := SessionFromContext(ctx)
			if !ok {
				logger.Log.Errorw("authorization failed", "err", ErrNotLoggedIn)
				return ErrNotLoggedIn
			}
			if _, ok := allowed[s.Role]; !ok {
				logger.Log.Errorw("authorization failed", "err", ErrForbidden, "user_id", s.UserID, "role", s.Role)
				return ErrForbidden
			}
			return next(ctx)
		}
	}
}
