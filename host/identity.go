package host

import (
	"github.com/dop251/goja"

	"github.com/scripthost-dev/scripthost-sdk/domain/ports"
)

// Names of the identity globals written while a file executes.
const (
	FileNameGlobal = "__filename"
	DirNameGlobal  = "__dirname"
)

// IdentityManager writes and clears the per-file identity globals on a
// context's global object. The globals reflect exactly the file
// currently executing and are reset to undefined immediately after
// that file finishes, whether it succeeded or threw.
type IdentityManager struct {
	resolver ports.PathResolver
}

// NewIdentityManager creates an IdentityManager using the given
// resolver for absolute-path and parent-directory decomposition.
func NewIdentityManager(resolver ports.PathResolver) *IdentityManager {
	return &IdentityManager{resolver: resolver}
}

// Set resolves path and writes __filename and __dirname on the
// context's global object. Resolution is best-effort normalization:
// even when the resolver reports an error it returns a cleaned path,
// and the globals are always written.
func (m *IdentityManager) Set(ec *ExecContext, path string) {
	resolved, _ := m.resolver.Resolve(path)
	global := ec.Global()
	_ = global.Set(FileNameGlobal, resolved.File)
	_ = global.Set(DirNameGlobal, resolved.Dir)
}

// Clear overwrites both identity globals with undefined, the explicit
// "absent" marker distinguishable from any path string.
func (m *IdentityManager) Clear(ec *ExecContext) {
	global := ec.Global()
	_ = global.Set(FileNameGlobal, goja.Undefined())
	_ = global.Set(DirNameGlobal, goja.Undefined())
}

// With runs fn with the identity globals set for path, and guarantees
// they are cleared on every exit path, including a panic out of fn.
func (m *IdentityManager) With(ec *ExecContext, path string, fn func() (goja.Value, error)) (goja.Value, error) {
	m.Set(ec, path)
	defer m.Clear(ec)
	return fn()
}
