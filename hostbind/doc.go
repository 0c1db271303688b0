// Package hostbind provides the curated host capabilities that the SDK
// exposes to script code: a logging console and timer scheduling
// primitives, collected in an immutable registry that materializes
// bindings onto an execution context's global object.
//
// Bindings installed from the same registry share their underlying Go
// state, so a binding copied into a composed context observes the same
// console and timer queue as the root context.
package hostbind
