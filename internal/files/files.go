package files

// Files reads the full contents of a source file by its path.
type Files interface {
	GetFile(path string) ([]byte, error)
}
