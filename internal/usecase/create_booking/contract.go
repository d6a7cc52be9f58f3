package create_booking

import (
	"context"

	"github.com/svtd-dev/TTD-BookingService/internal/domain"
)

// BookingRepository persists new bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CapacityAccountant computes remaining tickets for a (date, slot) pair.
type CapacityAccountant interface {
	Remaining(ctx context.Context, date, slot string) (int, error)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
