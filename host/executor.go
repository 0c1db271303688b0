package host

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dop251/goja"

	"github.com/scripthost-dev/scripthost-sdk/domain/ports"
	"github.com/scripthost-dev/scripthost-sdk/hostbind"
	"github.com/scripthost-dev/scripthost-sdk/infrastructure/source"
	sdklog "github.com/scripthost-dev/scripthost-sdk/log"
)

// tokenSeq issues a distinct isolation token per executor, so contexts
// composed from different executors are never mistaken for peers.
var tokenSeq atomic.Int64

// Executor owns the root execution context and the services wired
// around it: the host binding registry, the script loader and the
// context composer. The root context carries the native include and
// require globals.
type Executor struct {
	root     *ExecContext
	registry *hostbind.Registry
	reader   ports.SourceReader
	resolver ports.PathResolver
	logger   *slog.Logger
	clock    func() time.Time

	console *hostbind.Console
	timers  *hostbind.TimerQueue

	identity *IdentityManager
	loader   *Loader
	composer *Composer
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(opts ...Option) (*Executor, error) {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = sdklog.NewLogger()
	}
	if e.reader == nil {
		e.reader = source.NewFileReader()
	}
	if e.resolver == nil {
		e.resolver = source.NewFilesystemResolver()
	}
	if e.clock == nil {
		e.clock = time.Now
	}

	// Default registry if not provided: the console and the four timer
	// bindings, the exact capability set composed contexts may copy.
	if e.registry == nil {
		e.console = hostbind.NewConsole(hostbind.WithLogger(e.logger))
		e.timers = hostbind.NewTimerQueue(hostbind.WithClock(e.clock))
		registry, err := hostbind.NewRegistry(
			hostbind.WithConsole(e.console),
			hostbind.WithTimers(e.timers),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create default registry: %w", err)
		}
		e.registry = registry
	}

	e.root = NewExecContext(WithToken(tokenSeq.Add(1)))
	e.identity = NewIdentityManager(e.resolver)
	e.loader = NewLoader(e.reader, e.identity, e.logger)
	e.composer = NewComposer(e.loader, e.identity, e.logger)

	if err := e.registry.Install(e.root.Runtime()); err != nil {
		return nil, fmt.Errorf("failed to install host bindings: %w", err)
	}
	if err := InstallGlobals(e.root, e.loader, e.composer); err != nil {
		return nil, fmt.Errorf("failed to install boundary globals: %w", err)
	}
	return e, nil
}

// Root returns the executor's root execution context.
func (e *Executor) Root() *ExecContext {
	return e.root
}

// Registry returns the installed host binding registry.
func (e *Executor) Registry() *hostbind.Registry {
	return e.registry
}

// Timers returns the default timer queue, or nil when a custom
// registry was supplied.
func (e *Executor) Timers() *hostbind.TimerQueue {
	return e.timers
}

// Include loads a single file into the root context, without any
// isolation. See Loader.Include.
func (e *Executor) Include(path string) (LoadResult, error) {
	return e.loader.Include(e.root, path)
}

// Compose loads paths into a fresh context seeded from the root and
// returns the composed context. Its Global() is the module object.
func (e *Executor) Compose(nativeRequire, loaderHandle goja.Value, paths []string) (*ExecContext, error) {
	return e.composer.ComposeFiles(e.root, nativeRequire, loaderHandle, paths)
}

// RunDueTimers fires timer callbacks that have become due, each as its
// own synchronous turn. It is a no-op for executors with a custom
// registry.
func (e *Executor) RunDueTimers() (int, error) {
	if e.timers == nil {
		return 0, nil
	}
	return e.timers.RunDue(e.clock())
}

// Close releases the executor's resources. Pending timers are dropped;
// composed contexts already handed out stay valid for their owners.
func (e *Executor) Close() error {
	if e.timers != nil {
		e.timers.Reset()
	}
	e.root = nil
	return nil
}
