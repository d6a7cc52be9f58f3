// Package create_booking implements the booking creation flow: validate
// date and slot, check remaining capacity, persist.
package create_booking

import (
	"context"
	"fmt"

	"github.com/svtd-dev/TTD-BookingService/internal/domain"
)

// UseCase creates darshan bookings.
//
// The capacity check and the insert are not wrapped in a transaction or
// lock. Two concurrent requests on the same (date, slot) can both observe
// enough remaining capacity and both persist, slightly overshooting the
// limit under concurrent load. Sequential requests always hold the limit.
type UseCase struct {
	bookingRepo BookingRepository
	accountant  CapacityAccountant
	logger      Logger
}

// NewUseCase creates the booking creation use case.
func NewUseCase(bookingRepo BookingRepository, accountant CapacityAccountant, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		accountant:  accountant,
		logger:      logger,
	}
}

// Execute validates the request, enforces the capacity limit and persists
// the booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, slot=%s, tickets=%d",
		req.Email, req.Date, req.Slot, req.Tickets)

	// 1. Date must be a real YYYY-MM-DD calendar date.
	if err := validateDate(req.Date); err != nil {
		uc.logger.Warn("CreateBooking: invalid date %q", req.Date)
		return nil, err
	}

	// 2. Slot must be in the catalog.
	if err := validateSlot(req.Slot); err != nil {
		uc.logger.Warn("CreateBooking: invalid slot %q", req.Slot)
		return nil, err
	}

	// 3. Remaining capacity at this moment.
	remaining, err := uc.accountant.Remaining(ctx, req.Date, req.Slot)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to compute remaining capacity: %v", err)
		return nil, fmt.Errorf("%w: failed to compute remaining capacity: %v", ErrInternal, err)
	}

	// 4. Reject when the request overshoots what is left.
	if req.Tickets > remaining {
		uc.logger.Warn("CreateBooking: capacity exceeded for date=%s slot=%s: requested=%d remaining=%d",
			req.Date, req.Slot, req.Tickets, remaining)
		return nil, &CapacityExceededError{
			Date:      req.Date,
			Slot:      req.Slot,
			Remaining: remaining,
		}
	}

	// 5. Persist.
	darshanType := req.DarshanType
	if darshanType == "" {
		darshanType = domain.DefaultDarshanType
	}

	booking := &domain.Booking{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Date:        req.Date,
		Slot:        req.Slot,
		Tickets:     req.Tickets,
		DarshanType: darshanType,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	return &Response{
		ID:        created.ID,
		CreatedAt: created.CreatedAt,
	}, nil
}
