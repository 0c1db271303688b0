// Package source provides the filesystem-backed adapters for script
// reading and path resolution.
package source

import (
	"os"
	"path/filepath"

	"github.com/scripthost-dev/scripthost-sdk/domain/entities"
	"github.com/scripthost-dev/scripthost-sdk/domain/ports"
)

// FileReader implements ports.SourceReader against the OS filesystem.
type FileReader struct{}

// NewFileReader creates a new FileReader.
func NewFileReader() ports.SourceReader {
	return &FileReader{}
}

// Read returns the full contents of the file at path. The underlying
// I/O error is returned verbatim for the caller to wrap.
func (r *FileReader) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FilesystemResolver implements ports.PathResolver using lexical path
// normalization relative to the process working directory.
type FilesystemResolver struct{}

// NewFilesystemResolver creates a new FilesystemResolver.
func NewFilesystemResolver() ports.PathResolver {
	return &FilesystemResolver{}
}

// Resolve returns the absolute form of path and its parent directory.
// The file does not have to exist; only the working-directory lookup
// can fail, in which case the cleaned input is returned alongside the
// error so callers always have some resolved string to work with.
func (r *FilesystemResolver) Resolve(path string) (entities.ResolvedPath, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		cleaned := filepath.Clean(path)
		return entities.ResolvedPath{File: cleaned, Dir: filepath.Dir(cleaned)}, err
	}
	return entities.ResolvedPath{File: abs, Dir: filepath.Dir(abs)}, nil
}
