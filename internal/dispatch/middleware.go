package dispatch

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/nandemo-ya/latticectl/internal/logging"
)

// Handler performs the remote part of an invocation
type Handler func(ctx context.Context, inv *Invocation) (any, error)

// Middleware wraps a Handler
type Middleware func(next Handler) Handler

// DefaultMiddleware is used when a Dispatcher is created without any.
func DefaultMiddleware() []Middleware {
	return []Middleware{Logging, Recover}
}

// chain applies middlewares so the first in the list is outermost.
func chain(h Handler, middlewares ...Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Logging logs the start and outcome of the remote call. The total
// includes validation and confirmation since the invocation started.
func Logging(next Handler) Handler {
	return func(ctx context.Context, inv *Invocation) (any, error) {
		logger := logging.FromContext(ctx)
		start := time.Now()

		logger.Debug("Invoking operation", "params", inv.Params.Names())

		out, err := next(ctx, inv)
		if err != nil {
			logger.Warn("Operation failed", "duration", time.Since(start), "total", time.Since(inv.StartedAt), "error", err)
			return out, err
		}

		logger.Debug("Operation completed", "duration", time.Since(start), "total", time.Since(inv.StartedAt))
		return out, nil
	}
}

// Recover converts a panic in the remote call into an error.
func Recover(next Handler) Handler {
	return func(ctx context.Context, inv *Invocation) (out any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logging.FromContext(ctx).Error("Panic during operation", "panic", r, "stack", string(debug.Stack()))
				out = nil
				err = fmt.Errorf("%w in %s: %v", ErrInternal, inv.Operation, r)
			}
		}()
		return next(ctx, inv)
	}
}
