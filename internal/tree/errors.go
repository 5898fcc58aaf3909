package tree

import (
	"errors"
	"fmt"
	"io/fs"
)

// EnumError reports that the children of a directory could not be listed.
// It is the only failure a traversal produces; it aborts the whole walk.
type EnumError struct {
	Path string
	Err  error
}

func (e *EnumError) Error() string {
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	return fmt.Sprintf("cannot list %s: %v", e.Path, cause)
}

func (e *EnumError) Unwrap() error { return e.Err }
