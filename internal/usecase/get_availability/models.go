package get_availability

import "github.com/svtd-dev/TTD-BookingService/internal/domain"

// Request input for the availability listing.
type Request struct {
	Date string
}

// Response availability per slot, in catalog order.
type Response struct {
	Date  string
	Items []domain.AvailabilityItem
}
