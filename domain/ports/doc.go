// Package ports defines the interfaces through which the core reaches
// its collaborators: source reading, path resolution, manifest parsing
// and template rendering. Infrastructure adapters implement them.
package ports
