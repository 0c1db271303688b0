// Package bridge moves values between two engine runtimes. Engine
// values are bound to the runtime that created them and must never be
// used in another one, so every value that crosses a context boundary
// goes through Translate.
package bridge

import (
	"github.com/dop251/goja"
)

// Translate converts a value owned by src into a value usable in dst:
//
//   - undefined and null map to dst's own undefined/null
//   - primitives are snapshotted through Export/ToValue
//   - callables become wrappers that invoke the original inside src,
//     translating arguments in and the result back out
//   - any other object becomes a live dynamic proxy that forwards
//     property access to the original object
//
// The proxy keeps object mutation visible through both references,
// while rebinding a name on either side stays local to that side.
func Translate(src, dst *goja.Runtime, v goja.Value) goja.Value {
	if src == dst {
		return v
	}
	if v == nil || goja.IsUndefined(v) {
		return goja.Undefined()
	}
	if goja.IsNull(v) {
		return goja.Null()
	}
	if fn, ok := goja.AssertFunction(v); ok {
		return wrapCallable(src, dst, fn)
	}
	if obj, ok := v.(*goja.Object); ok {
		return dst.NewDynamicObject(&objectProxy{src: src, dst: dst, obj: obj})
	}
	return dst.ToValue(v.Export())
}

// wrapCallable returns a dst-side function that invokes fn in its home
// runtime. Execution stays synchronous; only values are translated.
func wrapCallable(src, dst *goja.Runtime, fn goja.Callable) goja.Value {
	return dst.ToValue(func(call goja.FunctionCall) goja.Value {
		args := make([]goja.Value, len(call.Arguments))
		for i, arg := range call.Arguments {
			args[i] = Translate(dst, src, arg)
		}
		res, err := fn(goja.Undefined(), args...)
		if err != nil {
			panic(dst.NewGoError(err))
		}
		return Translate(src, dst, res)
	})
}

// objectProxy adapts an object from the src runtime into dst via the
// engine's dynamic object mechanism.
type objectProxy struct {
	src *goja.Runtime
	dst *goja.Runtime
	obj *goja.Object
}

func (p *objectProxy) Get(key string) goja.Value {
	v := p.obj.Get(key)
	if v == nil {
		return nil
	}
	return Translate(p.src, p.dst, v)
}

func (p *objectProxy) Set(key string, val goja.Value) bool {
	return p.obj.Set(key, Translate(p.dst, p.src, val)) == nil
}

func (p *objectProxy) Has(key string) bool {
	return p.obj.Get(key) != nil
}

func (p *objectProxy) Delete(key string) bool {
	return p.obj.Delete(key) == nil
}

func (p *objectProxy) Keys() []string {
	return p.obj.Keys()
}
