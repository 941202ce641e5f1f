package mount

import (
	"errors"
	"fmt"
)

// Error kinds reported by the Executor, match them with errors.Is
var (
	ErrPathTooLong        = errors.New("path is too large")
	ErrMissingSource      = errors.New("source mount dir does not exist")
	ErrMissingDestination = errors.New("mountpoint does not exist")
	ErrMountFailed        = errors.New("mount failed")
)

// Error defines the failed path, the kind of failure and the errno
// returned by the kernel, if any
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrPathTooLong:
		return fmt.Sprintf("path %s is too large", e.Path)
	case ErrMissingSource:
		return fmt.Sprintf("source mount dir %s does not exist", e.Path)
	case ErrMissingDestination:
		return fmt.Sprintf("mountpoint %s does not exist", e.Path)
	}
	return fmt.Sprintf("failed to mount %s: %v", e.Path, e.Err)
}

// Unwrap exposes both the kind and the underlying errno
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
