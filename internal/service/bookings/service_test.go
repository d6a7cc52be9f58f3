package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svtd-dev/TTD-BookingService/internal/domain"
	"github.com/svtd-dev/TTD-BookingService/internal/service/bookings/models"
	"github.com/svtd-dev/TTD-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	bookings     []*domain.Booking
	orderedErr   error
	unorderedErr error

	lastFilter  domain.BookingsFilter
	lastOrdered []bool
}

func (f *fakeRepo) List(_ context.Context, filter domain.BookingsFilter, ordered bool) ([]*domain.Booking, error) {
	f.lastFilter = filter
	f.lastOrdered = append(f.lastOrdered, ordered)
	if ordered && f.orderedErr != nil {
		return nil, f.orderedErr
	}
	if !ordered && f.unorderedErr != nil {
		return nil, f.unorderedErr
	}
	return f.bookings, nil
}

func sampleBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		Name:        "Ramesh Kumar",
		Email:       "ramesh@example.com",
		Phone:       "9876543210",
		Date:        "2025-01-01",
		Slot:        "06:00-08:00",
		Tickets:     2,
		DarshanType: domain.DefaultDarshanType,
		CreatedAt:   time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestList_All(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{sampleBooking(2), sampleBooking(1)}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})

	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "2", resp.Items[0].ID, "identifiers are stringified")
	assert.Nil(t, repo.lastFilter.Email)
	assert.Equal(t, []bool{true}, repo.lastOrdered, "single ordered query on the happy path")
}

func TestList_EmailFilterPassedThrough(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Email: ptr.Ptr("ramesh@example.com"),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.Email)
	assert.Equal(t, "ramesh@example.com", *repo.lastFilter.Email)
}

func TestList_OrderedFailureFallsBackUnordered(t *testing.T) {
	repo := &fakeRepo{
		bookings:   []*domain.Booking{sampleBooking(1)},
		orderedErr: errors.New("cannot order"),
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})

	require.NoError(t, err, "ordering failure must not fail the request")
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, []bool{true, false}, repo.lastOrdered)
}

func TestList_BothQueriesFail(t *testing.T) {
	repo := &fakeRepo{
		orderedErr:   errors.New("down"),
		unorderedErr: errors.New("still down"),
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestFromDomainBooking_OmitsZeroCreatedAt(t *testing.T) {
	b := sampleBooking(7)
	b.CreatedAt = time.Time{}

	resp := models.FromDomainBooking(b)

	assert.Equal(t, "7", resp.ID)
	assert.Empty(t, resp.CreatedAt)
}
