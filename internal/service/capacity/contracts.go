package capacity

import "context"

// BookingRepository is the read surface the accountant needs.
type BookingRepository interface {
	SumTickets(ctx context.Context, date, slot string) (int, error)
	CountBookings(ctx context.Context, date, slot string) (int, error)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
