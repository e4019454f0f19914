package domain

import "errors"

var (
	// ErrInvalidMonth marks month tokens that are not YYYY-MM (caller's fault).
	ErrInvalidMonth = errors.New("invalid month")

	// ErrConversion marks month boundaries that cannot be represented or rendered.
	ErrConversion = errors.New("date conversion failed")
)
