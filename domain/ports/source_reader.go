package ports

// SourceReader reads the full text of a script source. Every load reads
// fresh; the SDK performs no caching across calls.
type SourceReader interface {
	// Read returns the contents of the file at path.
	Read(path string) ([]byte, error)
}
