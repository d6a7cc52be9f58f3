package get_availability

import "errors"

var (
	// ErrMissingDate is returned when the date parameter is empty.
	ErrMissingDate = errors.New("get_availability: date is required")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("get_availability: internal error")
)
