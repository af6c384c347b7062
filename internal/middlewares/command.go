package middlewares

import "context"

// Command is a single terminal command bound to its dependencies.
type Command func(ctx context.Context) error

// Middleware wraps a Command with cross-cutting behaviour.
type Middleware func(Command) Command

// Chain wraps cmd so that the first middleware is the outermost one.
func Chain(cmd Command, mws ...Middleware) Command {
	for i := len(mws) - 1; i >= 0; i-- {
		cmd = mws[i](cmd)
	}
	return cmd
}
