package middlewares

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type commandIDKey struct{}

// LoggingMiddleware returns a middleware that logs every command run using the provided SugaredLogger.
// It also generates a unique command ID and stores it in the context.
func LoggingMiddleware(log *zap.SugaredLogger, name string) Middleware {
	return func(next Command) Command {
		return func(ctx context.Context) error {
			cmdID := uuid.New().String()
			start := time.Now()

			ctx = context.WithValue(ctx, commandIDKey{}, cmdID)

			var sessionID string
			if s, ok := SessionFromContext(ctx); ok {
				sessionID = s.ID.String()
			}

			err := next(ctx)

			log.Infow("command",
				"command_id", cmdID,
				"session_id", sessionID,
				"name", name,
				"duration", time.Since(start),
				"error", err,
			)

			return err
		}
	}
}

// CommandIDFromContext returns the ID assigned by LoggingMiddleware, or "" if none.
func CommandIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(commandIDKey{}).(string)
	return id
}
