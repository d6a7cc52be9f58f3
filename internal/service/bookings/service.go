// Package bookings serves booking listings.
package bookings

import (
	"context"
	"fmt"

	"github.com/svtd-dev/TTD-BookingService/internal/domain"
	"github.com/svtd-dev/TTD-BookingService/internal/service/bookings/models"
)

// Service lists persisted bookings.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates a booking listing service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List returns all bookings, optionally filtered to one email, newest first.
// If the ordered query fails, the service retries unordered and returns
// that result instead of failing the request.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if req.Email != nil {
		s.logger.Info("List: fetching bookings for email=%s", *req.Email)
	} else {
		s.logger.Info("List: fetching all bookings")
	}

	filter := domain.BookingsFilter{Email: req.Email}

	items, err := s.bookingRepo.List(ctx, filter, true)
	if err != nil {
		s.logger.Warn("List: ordered query failed, retrying unordered: %v", err)

		items, err = s.bookingRepo.List(ctx, filter, false)
		if err != nil {
			s.logger.Error("List: repository error: %v", err)
			return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("List: successfully fetched %d bookings", len(items))
	return models.FromDomainBookingList(items), nil
}
