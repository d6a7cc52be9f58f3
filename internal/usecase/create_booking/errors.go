package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate is returned when the date does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("create_booking: invalid date format")

	// ErrInvalidSlot is returned when the slot is not in the catalog.
	ErrInvalidSlot = errors.New("create_booking: invalid slot selected")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("create_booking: internal error")
)

// CapacityExceededError is returned when the requested tickets exceed the
// remaining capacity for the slot and date. Error() is the exact message
// exposed to the client, stating the current remaining count.
type CapacityExceededError struct {
	Date      string
	Slot      string
	Remaining int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("Only %d tickets remaining for %s on %s", e.Remaining, e.Slot, e.Date)
}
