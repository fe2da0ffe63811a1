package document

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind is a coarse-grained categorization for file access failures.
type ErrorKind string

const (
	KindNotFound   ErrorKind = "not_found"
	KindPermission ErrorKind = "permission"
	KindEncoding   ErrorKind = "encoding"
	KindIO         ErrorKind = "io"
)

// FileAccessError wraps a failure to read, decode, encode or write a document.
type FileAccessError struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *FileAccessError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is a FileAccessError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var fe *FileAccessError
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}

func accessError(op, path string, err error) *FileAccessError {
	kind := KindIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	}
	return &FileAccessError{Op: op, Kind: kind, Path: path, Err: err}
}
