package get_availability

import "context"

// CapacityAccountant computes committed tickets for a (date, slot) pair.
type CapacityAccountant interface {
	TicketsBooked(ctx context.Context, date, slot string) (int, error)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
