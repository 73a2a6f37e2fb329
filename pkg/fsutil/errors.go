package fsutil

import (
	"errors"
	"io/fs"
)

// Kind classifies a filesystem failure.
type Kind int

const (
	KindIO Kind = iota
	KindNotFound
	KindPermission
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	default:
		return "i/o error"
	}
}

// Sentinels matched by *Error through errors.Is.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIO               = errors.New("i/o error")

	ErrTooLarge    = errors.New("file exceeds size limit")
	ErrIsDirectory = errors.New("is a directory")
	ErrNotDir      = errors.New("not a directory")
)

// Error records a failed filesystem helper call.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the Kind sentinels; other targets are compared through Unwrap.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrFileNotFound:
		return e.Kind == KindNotFound
	case ErrPermissionDenied:
		return e.Kind == KindPermission
	case ErrIO:
		return e.Kind == KindIO
	}
	return false
}

func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		return err
	}
	kind := KindIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	}
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}
