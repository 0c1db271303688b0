// Package host implements the embedding core: execution contexts,
// per-file identity globals, single-file script loading, and the
// composition of fresh contexts that load an ordered file list as a
// pseudo-module bundle.
//
// Everything here is synchronous and single-threaded: one script runs
// to completion (or throws) before control returns to the host, and
// nothing yields to an event loop mid-operation. Timer callbacks
// scheduled by scripts run as separate later turns driven by the host
// (see Executor.RunDueTimers).
package host
