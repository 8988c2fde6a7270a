package payload

import "errors"

var (
	// ErrInvalidAmount is returned by [Build] when the live amount is not a
	// decimal number.
	ErrInvalidAmount = errors.New("amount is not a decimal number")
	// ErrNoProfile is returned by [Build] when the active mode has no
	// profile selected.
	ErrNoProfile = errors.New("no profile selected")
)
