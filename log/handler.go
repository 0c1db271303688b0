// Package log provides structured logging (slog) for embedding hosts.
// Records emitted by script code (through the console binding) flow
// through a ScriptHandler, which stamps them with a component marker
// and applies level filtering before delegating to an inner handler.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ScriptHandler implements slog.Handler for script-originated records.
type ScriptHandler struct {
	inner slog.Handler
	opts  handlerConfig
}

// HandlerOption configures the ScriptHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level     slog.Level
	addSource bool
	writer    io.Writer
	inner     slog.Handler
}

// defaultHandlerConfig returns the default configuration.
func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level:  slog.LevelInfo,
		writer: os.Stderr,
	}
}

// WithLevel sets the minimum log level to report.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line) of the
// host call site. Script file identity travels as a record attribute
// instead; see the console binding.
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// WithWriter sets the destination for the default text handler.
func WithWriter(w io.Writer) HandlerOption {
	return func(c *handlerConfig) {
		c.writer = w
	}
}

// WithInner routes records to an existing handler instead of the
// default text handler. Level filtering still applies on this side.
func WithInner(h slog.Handler) HandlerOption {
	return func(c *handlerConfig) {
		c.inner = h
	}
}

// NewHandler creates a new ScriptHandler with the given options.
func NewHandler(opts ...HandlerOption) *ScriptHandler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	inner := cfg.inner
	if inner == nil {
		inner = slog.NewTextHandler(cfg.writer, &slog.HandlerOptions{
			Level:     cfg.level,
			AddSource: cfg.addSource,
		})
	}
	inner = inner.WithAttrs([]slog.Attr{slog.String("component", "script")})
	return &ScriptHandler{inner: inner, opts: cfg}
}

// NewLogger returns a slog.Logger backed by a ScriptHandler.
func NewLogger(opts ...HandlerOption) *slog.Logger {
	return slog.New(NewHandler(opts...))
}

// Enabled reports whether the handler handles records at the given level.
func (h *ScriptHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level
}

// Handle delegates the record to the inner handler.
func (h *ScriptHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.inner.Handle(ctx, r)
}

// WithAttrs returns a new ScriptHandler that includes the given attributes.
func (h *ScriptHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ScriptHandler{inner: h.inner.WithAttrs(attrs), opts: h.opts}
}

// WithGroup returns a new ScriptHandler with the given group name.
func (h *ScriptHandler) WithGroup(name string) slog.Handler {
	return &ScriptHandler{inner: h.inner.WithGroup(name), opts: h.opts}
}
