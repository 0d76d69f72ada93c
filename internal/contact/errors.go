package contact

import "errors"

var (
	// ErrInvalidFormat indicates a phone number is not exactly 10 decimal digits.
	ErrInvalidFormat = errors.New("contact: invalid phone number format")

	// ErrNotFound indicates a phone number or contact does not exist.
	ErrNotFound = errors.New("contact: not found")
)
