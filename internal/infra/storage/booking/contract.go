package booking

import (
	"github.com/svtd-dev/TTD-BookingService/pkg/dbmetrics"
)

// DBExecutor is satisfied by *sql.DB and by the metrics-wrapped *dbmetrics.DB.
type DBExecutor = dbmetrics.DBExecutor
