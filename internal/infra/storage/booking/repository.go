package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/svtd-dev/TTD-BookingService/internal/domain"
	"github.com/svtd-dev/TTD-BookingService/pkg/psqlbuilder"
)

const tableBookings = "bookings"

// Repository persists darshan bookings in Postgres.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository on top of the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and fills in its generated id and created_at.
//
// Deliberately not transactional: the capacity check in the create_booking
// usecase and this insert are separate statements, so two concurrent
// requests on the same (date, slot) can both pass the check before either
// inserts.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"name",
			"email",
			"phone",
			"date",
			"slot",
			"tickets",
			"darshan_type",
		).
		Values(
			b.Name,
			b.Email,
			b.Phone,
			b.Date,
			b.Slot,
			b.Tickets,
			b.DarshanType,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	b.CreatedAt = createdAt.Time

	return b, nil
}

// SumTickets aggregates the tickets committed for an exact (date, slot) pair.
// No matching rows is a sum of 0, not an error.
func (r *Repository) SumTickets(ctx context.Context, date, slot string) (int, error) {
	query, args, err := psqlbuilder.Select("COALESCE(SUM(tickets), 0)").
		From(tableBookings).
		Where(squirrel.Eq{"date": date, "slot": slot}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SumTickets - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumTickets - scan total: %v", ErrExecQuery, err)
	}

	return total, nil
}

// CountBookings counts booking rows for an exact (date, slot) pair.
// Used as the degraded substitute for SumTickets: it undercounts whenever
// any booking holds more than one ticket.
func (r *Repository) CountBookings(ctx context.Context, date, slot string) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableBookings).
		Where(squirrel.Eq{"date": date, "slot": slot}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountBookings - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountBookings - scan count: %v", ErrExecQuery, err)
	}

	return count, nil
}

// List returns bookings matching the filter, newest first when ordered
// is true and in storage order otherwise.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter, ordered bool) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"phone",
		"date",
		"slot",
		"tickets",
		"darshan_type",
		"created_at",
	).
		From(tableBookings)

	if filter.Email != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"email": *filter.Email})
	}

	if ordered {
		selectBuilder = selectBuilder.OrderBy("created_at DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Relations returns up to limit public table names, for the diagnostics
// endpoint.
func (r *Repository) Relations(ctx context.Context, limit int) ([]string, error) {
	query, args, err := psqlbuilder.Select("tablename").
		From("pg_catalog.pg_tables").
		Where(squirrel.Eq{"schemaname": "public"}).
		OrderBy("tablename ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Relations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Relations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0, limit)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: Relations - scan name: %v", ErrScanRow, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Relations - rows error: %v", ErrScanRow, err)
	}

	return names, nil
}

// scanBookings scans query results into a slice of bookings.
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Email,
			&b.Phone,
			&b.Date,
			&b.Slot,
			&b.Tickets,
			&b.DarshanType,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
