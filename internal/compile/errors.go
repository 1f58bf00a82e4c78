package compile

import (
	"fmt"
)

// FileAccessError is returned when a source path does not exist, cannot be
// read or does not hold valid text. No request is made once it occurs.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to access source file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// NetworkError is returned when the compile service cannot be reached or the
// response body cannot be read.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to reach compile service %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
