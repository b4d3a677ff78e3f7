package cursorvec

import "errors"

// Errors returned by State.Err for non-valid cursor states.
var (
	// ErrMaxOut indicates movement was clamped at the upper sequence bound.
	ErrMaxOut = errors.New("cursor at maximum bound")

	// ErrMinOut indicates movement was clamped at the lower sequence bound.
	ErrMinOut = errors.New("cursor at minimum bound")

	// ErrOutOfRange indicates the cursor does not address any element of
	// the current sequence.
	ErrOutOfRange = errors.New("cursor out of range")
)
