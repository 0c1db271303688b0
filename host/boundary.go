package host

import (
	"github.com/dop251/goja"

	domerrors "github.com/scripthost-dev/scripthost-sdk/domain/errors"
	"github.com/scripthost-dev/scripthost-sdk/internal/bridge"
)

// InstallGlobals defines the native include and require functions on a
// context. This is the marshalling boundary: arity and argument types
// are checked here, before any filesystem access or execution, and Go
// errors are rethrown into the engine as exceptions.
func InstallGlobals(ec *ExecContext, loader *Loader, composer *Composer) error {
	rt := ec.Runtime()

	include := func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) != 1 {
			panic(rt.NewGoError(&domerrors.ArgumentError{Op: "include", Reason: "invalid number of parameters, 1 expected"}))
		}
		path, ok := exportString(call.Argument(0))
		if !ok || path == "" {
			panic(rt.NewGoError(&domerrors.ArgumentError{Op: "include", Reason: "requires a non-empty filename argument"}))
		}
		res, err := loader.Include(ec, path)
		if err != nil {
			panic(rt.NewGoError(err))
		}
		return res.Value
	}

	require := func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) != 3 {
			panic(rt.NewGoError(&domerrors.ArgumentError{Op: "require", Reason: "invalid number of parameters, 3 expected"}))
		}
		if _, ok := goja.AssertFunction(call.Argument(0)); !ok {
			panic(rt.NewGoError(&domerrors.ArgumentError{Op: "require", Reason: "first argument must be a function"}))
		}
		list, ok := call.Argument(2).(*goja.Object)
		if !ok || list.ClassName() != "Array" {
			panic(rt.NewGoError(&domerrors.ArgumentError{Op: "require", Reason: "third argument must be an array"}))
		}

		composed, err := composer.Compose(ec, call.Argument(0), call.Argument(1), list)
		if err != nil {
			panic(rt.NewGoError(err))
		}
		// The module object lives in the composed runtime; hand the
		// caller a live view of it.
		return bridge.Translate(composed.Runtime(), rt, composed.Global())
	}

	if err := ec.Global().Set("include", include); err != nil {
		return err
	}
	return ec.Global().Set("require", require)
}
