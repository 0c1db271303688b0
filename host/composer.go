package host

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dop251/goja"

	domerrors "github.com/scripthost-dev/scripthost-sdk/domain/errors"
	"github.com/scripthost-dev/scripthost-sdk/internal/bridge"
)

// Names under which a composed context sees its seeded bindings.
const (
	ExportsBinding = "exports"
	LoaderBinding  = "loader"
	RequireBinding = "require"
)

var (
	// selfAliases expose the composed context's own global object.
	selfAliases = []string{"global", "self"}
	// hostAliases expose the composing context's global object, the
	// one explicit route back into the host namespace.
	hostAliases = []string{"globals", "root"}
	// copiedBindings is the fixed, enumerated subset of host bindings
	// snapshot-copied into every composed context. Nothing else from
	// the host namespace is visible inside it.
	copiedBindings = []string{"console", "setTimeout", "clearTimeout", "setInterval", "clearInterval"}
)

// composeState tracks a composition through its lifecycle. The
// fail-fast policy (stop at the first failed file, keep prior effects)
// is a named transition rather than implicit control flow.
type composeState int

const (
	stateCreated composeState = iota
	stateSeeded
	stateLoading
	stateFailed
	stateCompleted
	stateIdentityCleared
	stateReturned
)

func (s composeState) String() string {
	switch s {
	case stateCreated:
		return "created"
	case stateSeeded:
		return "seeded"
	case stateLoading:
		return "loading"
	case stateFailed:
		return "failed"
	case stateCompleted:
		return "completed"
	case stateIdentityCleared:
		return "identity-cleared"
	case stateReturned:
		return "returned"
	default:
		return "unknown"
	}
}

// Composer builds fresh execution contexts, seeds them with the
// enumerated binding set, and drives the Loader over an ordered file
// list against them.
type Composer struct {
	loader   *Loader
	identity *IdentityManager
	logger   *slog.Logger
}

// NewComposer creates a Composer.
func NewComposer(loader *Loader, identity *IdentityManager, logger *slog.Logger) *Composer {
	return &Composer{loader: loader, identity: identity, logger: logger}
}

// Compose creates a new isolated context seeded from hostCtx, then
// loads the entries of fileList in order, stopping at the first
// failure. Already-executed files are not rolled back.
//
// The composed context is returned in every case, including failure:
// its global object is the module object and the caller may inspect a
// partially populated exports binding. When a file failed with a
// propagating error that error is returned alongside, and boundary
// layers rethrow it so the script-visible call fails.
//
// fileList entries are validated lazily: a non-string entry aborts the
// composition with a SequenceError at the point it is reached.
func (c *Composer) Compose(hostCtx *ExecContext, nativeRequire, loaderHandle goja.Value, fileList *goja.Object) (*ExecContext, error) {
	newCtx := NewExecContext(WithToken(hostCtx.Token()))
	state := stateCreated
	advance := func(next composeState) {
		c.logger.Debug("composition state", "from", state.String(), "to", next.String())
		state = next
	}

	if err := c.seed(hostCtx, newCtx, nativeRequire, loaderHandle); err != nil {
		return newCtx, err
	}
	advance(stateSeeded)

	loadErr := func() error {
		// The single post-loop identity clear runs on every exit path.
		defer func() {
			c.identity.Clear(newCtx)
			advance(stateIdentityCleared)
		}()

		length := int(fileList.Get("length").ToInteger())
		for i := 0; i < length; i++ {
			advance(stateLoading)
			path, ok := exportString(fileList.Get(strconv.Itoa(i)))
			if !ok {
				advance(stateFailed)
				return &domerrors.SequenceError{Index: i}
			}
			res, err := c.loader.Include(newCtx, path)
			if err != nil {
				advance(stateFailed)
				return err
			}
			if res.Failed {
				advance(stateFailed)
				return nil
			}
		}
		advance(stateCompleted)
		return nil
	}()

	advance(stateReturned)
	return newCtx, loadErr
}

// ComposeFiles is a Go-side convenience over Compose for callers that
// already hold their file list as a string slice. nativeRequire and
// loaderHandle may be nil, in which case the corresponding bindings are
// seeded as undefined.
func (c *Composer) ComposeFiles(hostCtx *ExecContext, nativeRequire, loaderHandle goja.Value, paths []string) (*ExecContext, error) {
	items := make([]interface{}, len(paths))
	for i, p := range paths {
		items[i] = p
	}
	return c.Compose(hostCtx, orUndefined(nativeRequire), orUndefined(loaderHandle), hostCtx.Runtime().NewArray(items...))
}

// seed populates the new context's global object with the curated
// binding set before any file executes.
func (c *Composer) seed(hostCtx, newCtx *ExecContext, nativeRequire, loaderHandle goja.Value) error {
	hostRt := hostCtx.Runtime()
	rt := newCtx.Runtime()
	global := newCtx.Global()

	set := func(name string, v interface{}) error {
		if err := global.Set(name, v); err != nil {
			return fmt.Errorf("failed to seed binding %q: %w", name, err)
		}
		return nil
	}

	// A fresh namespace for the module's public surface.
	if err := set(ExportsBinding, rt.NewObject()); err != nil {
		return err
	}
	for _, name := range selfAliases {
		if err := set(name, global); err != nil {
			return err
		}
	}
	hostGlobal := bridge.Translate(hostRt, rt, hostCtx.Global())
	for _, name := range hostAliases {
		if err := set(name, hostGlobal); err != nil {
			return err
		}
	}
	if err := set(LoaderBinding, bridge.Translate(hostRt, rt, orUndefined(loaderHandle))); err != nil {
		return err
	}
	if err := set(RequireBinding, bridge.Translate(hostRt, rt, orUndefined(nativeRequire))); err != nil {
		return err
	}

	// One-time snapshot of the enumerated host bindings: rebinding the
	// name host-side later is invisible here, while the Go state behind
	// each binding stays shared.
	for _, name := range copiedBindings {
		v := hostCtx.Global().Get(name)
		if v == nil {
			continue
		}
		if err := set(name, bridge.Translate(hostRt, rt, v)); err != nil {
			return err
		}
	}
	return nil
}

func orUndefined(v goja.Value) goja.Value {
	if v == nil {
		return goja.Undefined()
	}
	return v
}

// exportString reports whether v is a plain string value.
func exportString(v goja.Value) (string, bool) {
	if v == nil {
		return "", false
	}
	s, ok := v.Export().(string)
	return s, ok
}
