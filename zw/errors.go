package zw

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidPath           = errors.New("invalid path")
	ErrMissingExercisesDir   = errors.New("missing exercises directory")
	ErrWatcherInit           = errors.New("watcher init")
	ErrInvalidFileName       = errors.New("invalid file name")
	ErrInvalidExerciseNumber = errors.New("invalid exercise number")
	ErrBuildLaunch           = errors.New("build launch")
)

// kindError tags a wrapped error with one of the sentinel kinds above so
// callers can branch with errors.Is while the message keeps its context.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }
func (e *kindError) Unwrap() error { return e.err }

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

func mark(kind, cause error, format string, args ...interface{}) error {
	var err error
	if cause == nil {
		err = errors.Errorf(format, args...)
	} else {
		err = errors.Wrapf(cause, format, args...)
	}
	return &kindError{kind: kind, err: err}
}
