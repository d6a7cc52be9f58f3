package create_booking

import (
	"time"

	"github.com/svtd-dev/TTD-BookingService/internal/domain"
)

// validateDate checks that the date parses as a YYYY-MM-DD calendar date.
func validateDate(date string) error {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// validateSlot checks that the slot is a member of the fixed catalog.
func validateSlot(slot string) error {
	if !domain.IsValidSlot(slot) {
		return ErrInvalidSlot
	}
	return nil
}
