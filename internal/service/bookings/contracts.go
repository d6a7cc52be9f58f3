package bookings

import (
	"context"

	"github.com/svtd-dev/TTD-BookingService/internal/domain"
)

// BookingRepository is the storage surface the listing service needs.
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter, ordered bool) ([]*domain.Booking, error)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
