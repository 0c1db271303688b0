package hostbind

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dop251/goja"
)

// ConsoleBinding is the global name under which the console is exposed.
const ConsoleBinding = "console"

// fileNameGlobal mirrors the identity global written by the loader; the
// console reads it to attribute log lines to the executing script.
const fileNameGlobal = "__filename"

// Console is the logging facility exposed to script code. One Console
// backs every runtime it is installed on, so log routing stays under
// host control no matter which context a script runs in.
type Console struct {
	logger *slog.Logger
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithLogger routes console output through the given structured logger.
func WithLogger(logger *slog.Logger) ConsoleOption {
	return func(c *Console) {
		c.logger = logger
	}
}

// NewConsole creates a Console. Without options it logs through
// slog.Default().
func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Provider materializes the console object on a runtime. The object is
// per-runtime; the logger behind it is shared.
func (c *Console) Provider() Provider {
	return func(rt *goja.Runtime) (goja.Value, error) {
		obj := rt.NewObject()
		methods := map[string]slog.Level{
			"debug": slog.LevelDebug,
			"log":   slog.LevelInfo,
			"info":  slog.LevelInfo,
			"warn":  slog.LevelWarn,
			"error": slog.LevelError,
		}
		for name, level := range methods {
			level := level
			fn := func(call goja.FunctionCall) goja.Value {
				c.emit(rt, level, call.Arguments)
				return goja.Undefined()
			}
			if err := obj.Set(name, fn); err != nil {
				return nil, err
			}
		}
		return obj, nil
	}
}

// emit renders the arguments the way script consoles conventionally do
// (space-joined) and forwards the line to the structured logger,
// attributed to the currently executing file when identity is set.
func (c *Console) emit(rt *goja.Runtime, level slog.Level, args []goja.Value) {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	msg := strings.Join(parts, " ")

	if file := rt.GlobalObject().Get(fileNameGlobal); file != nil && !goja.IsUndefined(file) {
		c.logger.Log(context.Background(), level, msg, "file", file.String())
		return
	}
	c.logger.Log(context.Background(), level, msg)
}
