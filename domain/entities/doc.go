// Package entities contains the pure value objects of the SDK: bundle
// manifests, resolved script paths, load reports and structured error
// details. Nothing in this package depends on the engine or on any
// infrastructure concern.
package entities
