package thumb

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a local source failed validation.
type ErrorKind int

const (
	// KindNotFound means the local path does not exist.
	KindNotFound ErrorKind = iota + 1
	// KindNotReadable means the path exists but cannot be opened for reading.
	KindNotReadable
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindNotReadable:
		return "not readable"
	default:
		return "unknown"
	}
}

// Sentinels matched by ValidationError via errors.Is.
var (
	ErrNotFound    = errors.New("image file not found")
	ErrNotReadable = errors.New("image file not readable")
)

// ValidationError is returned by New when a local source fails its
// existence or readability check.
type ValidationError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s: %s", ErrNotFound, e.Path)
	case KindNotReadable:
		return fmt.Sprintf("%s: %s", ErrNotReadable, e.Path)
	}
	return fmt.Sprintf("invalid image file: %s", e.Path)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrNotReadable:
		return e.Kind == KindNotReadable
	}
	return false
}

// OperationError is the generic error raised by TriggerError.
type OperationError struct {
	Message string
	Err     error
}

func (e *OperationError) Error() string { return e.Message }

func (e *OperationError) Unwrap() error { return e.Err }
