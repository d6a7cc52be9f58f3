package capacity

import "errors"

var (
	// ErrPersistenceUnavailable is returned when both the aggregation and
	// the count fallback fail at the storage boundary.
	ErrPersistenceUnavailable = errors.New("capacity: persistence unavailable")
)
