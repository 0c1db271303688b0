package hostbind

import (
	"fmt"
	"sort"

	"github.com/dop251/goja"
)

// Provider materializes a binding value on the given runtime. It is
// invoked once per runtime the registry is installed on; providers that
// close over shared Go state keep that state common to every install.
type Provider func(rt *goja.Runtime) (goja.Value, error)

// Registry is an immutable collection of named host bindings. Once
// created via NewRegistry, bindings cannot be added or removed, which
// keeps the exposed capability set an explicit enumeration.
type Registry struct {
	providers map[string]Provider
	names     []string // sorted for consistent iteration
}

// registryBuilder accumulates configuration during registry construction.
type registryBuilder struct {
	providers  map[string]Provider
	middleware []Middleware
	errors     []error
}

// Option is a functional option for configuring a Registry.
type Option func(*registryBuilder)

// NewRegistry creates an immutable Registry with the given options.
// Returns an error if any binding name is registered twice.
//
// Example usage:
//
//	registry, err := hostbind.NewRegistry(
//	    hostbind.WithMiddleware(hostbind.RecoverMiddleware()),
//	    hostbind.WithConsole(console),
//	    hostbind.WithTimers(timers),
//	)
func NewRegistry(opts ...Option) (*Registry, error) {
	b := &registryBuilder{
		providers: make(map[string]Provider),
	}

	for _, opt := range opts {
		opt(b)
	}

	if len(b.errors) > 0 {
		return nil, b.errors[0] // Return first error
	}

	names := make([]string, 0, len(b.providers))
	for name := range b.providers {
		names = append(names, name)
	}
	sort.Strings(names)

	// Apply middleware chain to all providers (FIFO order, first added
	// wraps outermost).
	wrapped := make(map[string]Provider, len(b.providers))
	for name, provider := range b.providers {
		p := provider
		for i := len(b.middleware) - 1; i >= 0; i-- {
			p = b.middleware[i](p)
		}
		wrapped[name] = p
	}

	return &Registry{providers: wrapped, names: names}, nil
}

// Install materializes every binding onto the runtime's global object.
func (r *Registry) Install(rt *goja.Runtime) error {
	global := rt.GlobalObject()
	for _, name := range r.names {
		v, err := r.providers[name](rt)
		if err != nil {
			return fmt.Errorf("failed to materialize binding %q: %w", name, err)
		}
		if err := global.Set(name, v); err != nil {
			return fmt.Errorf("failed to install binding %q: %w", name, err)
		}
	}
	return nil
}

// Has returns true if a binding with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.providers[name]
	return ok
}

// Names returns a sorted list of all registered binding names.
func (r *Registry) Names() []string {
	result := make([]string, len(r.names))
	copy(result, r.names)
	return result
}

// addProvider registers a provider under the given name.
// Returns an error if the name is already registered.
func (b *registryBuilder) addProvider(name string, p Provider) error {
	if name == "" {
		return fmt.Errorf("binding name cannot be empty")
	}
	if _, exists := b.providers[name]; exists {
		return fmt.Errorf("duplicate binding name: %q", name)
	}
	b.providers[name] = p
	return nil
}

// WithProvider registers a raw Provider under the given name.
func WithProvider(name string, p Provider) Option {
	return func(b *registryBuilder) {
		if err := b.addProvider(name, p); err != nil {
			b.errors = append(b.errors, err)
		}
	}
}

// WithConsole registers the console logging facility under "console".
func WithConsole(c *Console) Option {
	return WithProvider(ConsoleBinding, c.Provider())
}

// WithTimers registers the four timer bindings (setTimeout,
// clearTimeout, setInterval, clearInterval) backed by the given queue.
func WithTimers(q *TimerQueue) Option {
	return func(b *registryBuilder) {
		for name, p := range q.providers() {
			if err := b.addProvider(name, p); err != nil {
				b.errors = append(b.errors, err)
			}
		}
	}
}
