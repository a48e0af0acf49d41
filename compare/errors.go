package compare

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument      = errors.New("compare: invalid argument")
	ErrNotComparable        = errors.New("compare: values are not comparable")
	ErrMissingConfiguration = errors.New("compare: missing comparer configuration")

	// ErrMalformedConfiguration narrows ErrMissingConfiguration to a token
	// that is present but cannot be decoded.
	ErrMalformedConfiguration = fmt.Errorf("%w: malformed token", ErrMissingConfiguration)
)
