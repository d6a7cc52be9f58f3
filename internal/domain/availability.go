package domain

// AvailabilityItem reports the booking state of one slot on one date.
type AvailabilityItem struct {
	Slot      string
	Capacity  int
	Booked    int
	Remaining int
}

// IsFull returns true if the slot has no remaining tickets.
func (a *AvailabilityItem) IsFull() bool {
	return a.Remaining <= 0
}

// IsUntouched returns true if nothing has been booked on the slot yet.
func (a *AvailabilityItem) IsUntouched() bool {
	return a.Booked == 0
}

// OccupancyRate returns the booked share as a percentage (0-100).
func (a *AvailabilityItem) OccupancyRate() float64 {
	if a.Capacity == 0 {
		return 0
	}
	return float64(a.Booked) / float64(a.Capacity) * 100
}
