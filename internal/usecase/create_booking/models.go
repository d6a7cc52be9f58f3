package create_booking

import "time"

// Request input for creating a booking. Contact fields are already
// format-validated at the HTTP boundary; date and slot membership are
// validated here.
type Request struct {
	Name        string
	Email       string
	Phone       string
	Date        string // YYYY-MM-DD
	Slot        string
	Tickets     int
	DarshanType string
}

// Response the created booking's identity.
type Response struct {
	ID        int64
	CreatedAt time.Time
}
