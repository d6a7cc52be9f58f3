package domain

import "time"

// Booking represents a persisted darshan ticket booking.
// Date and Slot are stored as plain strings and matched by string equality;
// the capacity invariant is defined over exact (date, slot) pairs.
type Booking struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	Date        string // YYYY-MM-DD
	Slot        string
	Tickets     int
	DarshanType string
	CreatedAt   time.Time
}

// BookingsFilter narrows booking listings.
type BookingsFilter struct {
	Email *string // nil = all bookings
}
