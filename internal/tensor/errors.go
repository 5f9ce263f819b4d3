package tensor

import "errors"

// Common errors.
//
// Functions in this module wrap one of these with context, so callers
// should match with errors.Is.
var (
	ErrInvalidAxis    = errors.New("invalid axis")
	ErrShape          = errors.New("invalid shape")
	ErrShapeMismatch  = errors.New("shape mismatch")
	ErrDivisionByZero = errors.New("division by zero")
	ErrEmptyInput     = errors.New("empty input")
)
