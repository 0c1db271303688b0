package host

import (
	"github.com/dop251/goja"
)

// ExecContext is an isolated execution environment: one engine runtime
// with its own global object and top-level bindings. A context is an
// owned resource with a single owner at a time; it is released when the
// last reference to it (the owner's handle or a closure created by an
// executed script) becomes unreachable. There is no global registry of
// live contexts.
type ExecContext struct {
	rt    *goja.Runtime
	token interface{}
}

// ContextOption configures a new ExecContext.
type ContextOption func(*ExecContext)

// WithToken sets the context's isolation token. Tokens must be
// comparable; two contexts carrying the same token are recognized as
// peers. The token grants no access by itself: cross-context reach is
// limited to the bindings explicitly seeded at composition time.
func WithToken(token interface{}) ContextOption {
	return func(c *ExecContext) {
		c.token = token
	}
}

// NewExecContext creates a fresh context with an empty global object
// (beyond what the engine provides by default).
func NewExecContext(opts ...ContextOption) *ExecContext {
	c := &ExecContext{rt: goja.New()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Runtime returns the context's engine runtime.
func (c *ExecContext) Runtime() *goja.Runtime {
	return c.rt
}

// Global returns the context's global object, the root of its binding
// namespace. It is mutated in place by the identity manager and by
// executed scripts.
func (c *ExecContext) Global() *goja.Object {
	return c.rt.GlobalObject()
}

// Token returns the context's isolation token.
func (c *ExecContext) Token() interface{} {
	return c.token
}

// Peers reports whether both contexts carry the same isolation token.
func (c *ExecContext) Peers(other *ExecContext) bool {
	return other != nil && c.token == other.token
}
