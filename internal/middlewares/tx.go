package middlewares

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/volunteer-hours/internal/logger"
)

// TxMiddleware runs a command inside a database transaction.
// The transaction is committed when the command succeeds and rolled back
// when it returns an error or panics.
func TxMiddleware(db *sqlx.DB) Middleware {
	return func(next Command) Command {
		return func(ctx context.Context) error {
			tx, err := db.BeginTxx(ctx, nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				return fmt.Errorf("begin transaction: %w", err)
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			if err := next(setTxToContext(ctx, tx)); err != nil {
				if rbErr := tx.Rollback(); rbErr != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
				}
				return err
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				return fmt.Errorf("commit transaction: %w", err)
			}
			return nil
		}
	}
}

// WithTx runs fn inside a transaction the same way TxMiddleware does.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context) error) error {
	return TxMiddleware(db)(fn)(ctx)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
