package entities

// ResolvedPath is a file reference decomposed into the absolute path of
// the file itself and the path of its containing directory. Resolution
// is pure path normalization; it does not imply the file exists.
type ResolvedPath struct {
	File string
	Dir  string
}
