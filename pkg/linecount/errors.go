package linecount

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the root path does not exist
	ErrNotFound = errors.New("path not found")

	// ErrDecode is returned when file content is not valid UTF-8 text
	ErrDecode = errors.New("not valid text")

	// ErrUnsupported is returned for a root that is neither a file nor a directory
	ErrUnsupported = errors.New("unsupported file type")
)

// PathError records a failure tied to a filesystem path
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// DecodeError represents a file whose content is not valid text
type DecodeError struct {
	Path string
	// Offset is the byte offset of the first invalid sequence
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: not valid text (invalid UTF-8 at byte %d)", e.Path, e.Offset)
}

// Unwrap lets errors.Is match ErrDecode
func (e *DecodeError) Unwrap() error {
	return ErrDecode
}
