// Package get_availability computes booked and remaining tickets for every
// catalog slot on a given date.
package get_availability

import (
	"context"
	"fmt"

	"github.com/svtd-dev/TTD-BookingService/internal/domain"
)

// UseCase lists per-slot availability.
type UseCase struct {
	accountant CapacityAccountant
	logger     Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(accountant CapacityAccountant, logger Logger) *UseCase {
	return &UseCase{
		accountant: accountant,
		logger:     logger,
	}
}

// Execute returns one availability item per catalog slot, preserving
// catalog order. Purely a read; two calls with no intervening writes
// yield identical results.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date == "" {
		uc.logger.Warn("GetAvailability: missing date")
		return nil, ErrMissingDate
	}

	uc.logger.Info("GetAvailability: date=%s", req.Date)

	items := make([]domain.AvailabilityItem, 0, len(domain.Slots))
	for _, slot := range domain.Slots {
		booked, err := uc.accountant.TicketsBooked(ctx, req.Date, slot)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to compute booked tickets for slot=%s: %v", slot, err)
			return nil, fmt.Errorf("%w: failed to compute booked tickets: %v", ErrInternal, err)
		}

		remaining := domain.SlotCapacity - booked
		if remaining < 0 {
			remaining = 0
		}

		items = append(items, domain.AvailabilityItem{
			Slot:      slot,
			Capacity:  domain.SlotCapacity,
			Booked:    booked,
			Remaining: remaining,
		})
	}

	uc.logger.Info("GetAvailability: computed %d slots for date=%s", len(items), req.Date)

	return &Response{
		Date:  req.Date,
		Items: items,
	}, nil
}
