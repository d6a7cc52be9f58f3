package get_availability

import (
	getAvailability "github.com/svtd-dev/TTD-BookingService/internal/usecase/get_availability"
)

// AvailabilityItem one slot's availability as exposed over HTTP.
type AvailabilityItem struct {
	Slot      string `json:"slot"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
}

// FromUseCaseResponse converts the use case result into the HTTP response,
// preserving catalog order.
func FromUseCaseResponse(resp *getAvailability.Response) []AvailabilityItem {
	items := make([]AvailabilityItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = AvailabilityItem{
			Slot:      item.Slot,
			Capacity:  item.Capacity,
			Booked:    item.Booked,
			Remaining: item.Remaining,
		}
	}
	return items
}
