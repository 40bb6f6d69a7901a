package content

import (
	"errors"
	"fmt"
)

var (
	ErrFrontMatter   = errors.New("malformed front matter")
	ErrMissingTitle  = errors.New("missing title")
	ErrMissingDate   = errors.New("missing date")
	ErrInvalidDate   = errors.New("unparseable date")
	ErrDuplicateSlug = errors.New("duplicate slug")
)

// Error is a problem with one content file. Content errors are fatal to a build.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("content %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
