package bookings

import "errors"

var (
	// ErrInternal is returned on storage failures with no fallback left.
	ErrInternal = errors.New("bookings: internal error")
)
