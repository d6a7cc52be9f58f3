package diagnostics

import "context"

// Store is the connection the endpoint probes. Both *sql.DB and the
// metrics-wrapped *dbmetrics.DB satisfy it.
type Store interface {
	PingContext(ctx context.Context) error
}

// BookingRepository lists relation names for the status payload.
type BookingRepository interface {
	Relations(ctx context.Context, limit int) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
