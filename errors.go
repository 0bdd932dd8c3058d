package magickit

import (
	"errors"
	"fmt"
)

// Common binding errors
var (
	ErrClosed      = errors.New("magic handle already closed")
	ErrOpenFailed  = errors.New("failed to open magic handle")
	ErrNotLoaded   = errors.New("no magic database loaded")
	ErrEmptyResult = errors.New("empty result from libmagic")
)

// MagicError records an error returned by libmagic together with the
// operation and, when applicable, the file path that caused it.
type MagicError struct {
	Op    string
	Path  string
	Errno int
	Err   error
}

// Error implements the error interface
func (e *MagicError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *MagicError) Unwrap() error {
	return e.Err
}

// IsClosed reports whether an error indicates that the magic handle
// has already been closed
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsNotLoaded reports whether an error indicates that no magic
// database has been loaded into the handle
func IsNotLoaded(err error) bool {
	return errors.Is(err, ErrNotLoaded)
}
