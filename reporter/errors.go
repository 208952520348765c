package reporter

import (
	"fmt"

	"github.com/minicc/minicc/token"
)

// ErrorWithLocation is an error that carries the source location it refers
// to.
type ErrorWithLocation interface {
	error
	// Location returns the source position of the error.
	Location() token.Location
	// Unwrap returns the underlying error.
	Unwrap() error
}

type errorWithLocation struct {
	underlying error
	loc        token.Location
}

// Errorf creates a new ErrorWithLocation whose underlying error is created
// with fmt.Errorf, so %w works.
func Errorf(loc token.Location, format string, args ...any) ErrorWithLocation {
	return &errorWithLocation{
		underlying: fmt.Errorf(format, args...),
		loc:        loc,
	}
}

// WrapError wraps err with a location. If err is nil, WrapError returns nil;
// if err already carries this location, it is returned as is.
func WrapError(loc token.Location, err error) ErrorWithLocation {
	if err == nil {
		return nil
	}
	if ewl, ok := err.(ErrorWithLocation); ok && ewl.Location() == loc {
		return ewl
	}
	return &errorWithLocation{underlying: err, loc: loc}
}

func (e *errorWithLocation) Error() string {
	return fmt.Sprintf("%s: %v", e.loc, e.underlying)
}

func (e *errorWithLocation) Location() token.Location {
	return e.loc
}

func (e *errorWithLocation) Unwrap() error {
	return e.underlying
}
