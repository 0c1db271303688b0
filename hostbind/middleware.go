package hostbind

import (
	"fmt"
	"log/slog"

	"github.com/dop251/goja"
)

// Middleware wraps a Provider to add cross-cutting behavior around
// binding materialization. Middleware executes in FIFO order (first
// registered wraps outermost).
type Middleware func(next Provider) Provider

// WithMiddleware adds middleware to the registry.
func WithMiddleware(mw ...Middleware) Option {
	return func(b *registryBuilder) {
		b.middleware = append(b.middleware, mw...)
	}
}

// RecoverMiddleware returns a middleware that converts provider panics
// into errors instead of crashing the host during installation.
func RecoverMiddleware() Middleware {
	return func(next Provider) Provider {
		return func(rt *goja.Runtime) (v goja.Value, err error) {
			defer func() {
				if r := recover(); r != nil {
					v = nil
					err = fmt.Errorf("binding provider panicked: %v", r)
				}
			}()
			return next(rt)
		}
	}
}

// LoggingMiddleware returns a middleware that logs binding
// materialization through the given structured logger.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next Provider) Provider {
		return func(rt *goja.Runtime) (goja.Value, error) {
			v, err := next(rt)
			if err != nil {
				logger.Error("binding materialization failed", "error", err)
			} else {
				logger.Debug("binding materialized")
			}
			return v, err
		}
	}
}
