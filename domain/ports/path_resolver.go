package ports

import "github.com/scripthost-dev/scripthost-sdk/domain/entities"

// PathResolver decomposes a file reference into its absolute path and
// containing directory. Resolution is best-effort normalization and is
// not existence-checked.
type PathResolver interface {
	Resolve(path string) (entities.ResolvedPath, error)
}
