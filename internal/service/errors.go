package service

import (
	"errors"
	"fmt"
)

// ErrMissingValue is matched (via [errors.Is]) by every [*MissingValueError].
var ErrMissingValue = errors.New("missing config value")

// MissingValueError reports a key that was declared in the source file
// without a value and was not supplied by the environment either.
type MissingValueError struct {
	Key string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("value for '%s' should be defined", e.Key)
}

// Is lets errors.Is(err, ErrMissingValue) match.
func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}
