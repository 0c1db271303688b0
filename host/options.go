package host

import (
	"log/slog"
	"time"

	"github.com/scripthost-dev/scripthost-sdk/domain/ports"
	"github.com/scripthost-dev/scripthost-sdk/hostbind"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithRegistry replaces the default host binding registry (console plus
// timers). Executors configured this way expose no timer queue of their
// own; RunDueTimers becomes a no-op.
func WithRegistry(registry *hostbind.Registry) Option {
	return func(e *Executor) {
		e.registry = registry
	}
}

// WithSourceReader substitutes the script source reader.
func WithSourceReader(reader ports.SourceReader) Option {
	return func(e *Executor) {
		e.reader = reader
	}
}

// WithResolver substitutes the path resolver used for the identity
// globals and bundle-relative paths.
func WithResolver(resolver ports.PathResolver) Option {
	return func(e *Executor) {
		e.resolver = resolver
	}
}

// WithLogger routes SDK and script console logging through the given
// structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithClock substitutes the time source used by the timer queue.
func WithClock(clock func() time.Time) Option {
	return func(e *Executor) {
		e.clock = clock
	}
}
