package host

import (
	"log/slog"

	"github.com/dop251/goja"

	domerrors "github.com/scripthost-dev/scripthost-sdk/domain/errors"
	"github.com/scripthost-dev/scripthost-sdk/domain/ports"
)

// LoadResult is the outcome of loading a single script file. Failed is
// set on every failure mode; the accompanying error is non-nil except
// for compilation failures, which report through the engine diagnostic
// channel and leave Value undefined.
type LoadResult struct {
	Value  goja.Value
	Failed bool
}

// Loader reads, compiles and executes single script files against a
// designated execution context. Source text is read fresh on every
// call; there is no caching or de-duplication.
type Loader struct {
	reader   ports.SourceReader
	identity *IdentityManager
	logger   *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(reader ports.SourceReader, identity *IdentityManager, logger *slog.Logger) *Loader {
	return &Loader{reader: reader, identity: identity, logger: logger}
}

// Include loads, compiles and executes the file at path in ec.
//
// The identity globals are set for the duration of the execution and
// cleared afterwards even when the script throws. A thrown exception is
// wrapped in a ScriptError and propagated, never swallowed.
func (l *Loader) Include(ec *ExecContext, path string) (LoadResult, error) {
	if path == "" {
		return LoadResult{Value: goja.Undefined(), Failed: true},
			&domerrors.ArgumentError{Op: "include", Reason: "requires a non-empty filename argument"}
	}

	src, err := l.reader.Read(path)
	if err != nil {
		return LoadResult{Value: goja.Undefined(), Failed: true},
			&domerrors.IOError{Path: path, Err: err}
	}

	program, err := goja.Compile(path, string(src), false)
	if err != nil {
		// Syntax errors surface on the diagnostic channel only; the
		// result is an absent value, not a propagated error.
		l.logger.Error("script compilation failed", "file", path, "error", err)
		return LoadResult{Value: goja.Undefined(), Failed: true}, nil
	}

	value, err := l.identity.With(ec, path, func() (goja.Value, error) {
		return ec.Runtime().RunProgram(program)
	})
	if err != nil {
		return LoadResult{Value: goja.Undefined(), Failed: true},
			&domerrors.ScriptError{Path: path, Err: err}
	}
	if value == nil {
		value = goja.Undefined()
	}
	return LoadResult{Value: value}, nil
}
