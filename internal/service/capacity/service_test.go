package capacity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svtd-dev/TTD-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeRepo drives the two accounting tiers independently.
type fakeRepo struct {
	sum      int
	sumErr   error
	count    int
	countErr error

	sumCalls   int
	countCalls int
}

func (f *fakeRepo) SumTickets(_ context.Context, _, _ string) (int, error) {
	f.sumCalls++
	return f.sum, f.sumErr
}

func (f *fakeRepo) CountBookings(_ context.Context, _, _ string) (int, error) {
	f.countCalls++
	return f.count, f.countErr
}

func TestTicketsBooked_AggregationPath(t *testing.T) {
	repo := &fakeRepo{sum: 42}
	svc := NewService(repo, nopLogger{})

	got, err := svc.TicketsBooked(context.Background(), "2025-01-01", "06:00-08:00")

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, repo.sumCalls)
	assert.Zero(t, repo.countCalls, "fallback must not run when aggregation succeeds")
}

func TestTicketsBooked_EmptyStoreIsZero(t *testing.T) {
	svc := NewService(&fakeRepo{sum: 0}, nopLogger{})

	got, err := svc.TicketsBooked(context.Background(), "2025-01-01", "06:00-08:00")

	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestTicketsBooked_FallbackPath(t *testing.T) {
	// Aggregation down, count answers. The count is a known undercount
	// when bookings hold more than one ticket.
	repo := &fakeRepo{sumErr: errors.New("aggregation unavailable"), count: 7}
	svc := NewService(repo, nopLogger{})

	got, err := svc.TicketsBooked(context.Background(), "2025-01-01", "06:00-08:00")

	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 1, repo.sumCalls)
	assert.Equal(t, 1, repo.countCalls)
}

func TestTicketsBooked_BothTiersFail(t *testing.T) {
	repo := &fakeRepo{
		sumErr:   errors.New("aggregation unavailable"),
		countErr: errors.New("count unavailable"),
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.TicketsBooked(context.Background(), "2025-01-01", "06:00-08:00")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistenceUnavailable)
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		name   string
		booked int
		want   int
	}{
		{name: "empty store", booked: 0, want: domain.SlotCapacity},
		{name: "partially booked", booked: 5, want: 195},
		{name: "exactly full", booked: domain.SlotCapacity, want: 0},
		{name: "overshoot floors at zero", booked: domain.SlotCapacity + 30, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeRepo{sum: tt.booked}, nopLogger{})

			got, err := svc.Remaining(context.Background(), "2025-01-01", "06:00-08:00")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestRemaining_ReadsAreIdempotent(t *testing.T) {
	repo := &fakeRepo{sum: 13}
	svc := NewService(repo, nopLogger{})

	first, err := svc.Remaining(context.Background(), "2025-01-01", "06:00-08:00")
	require.NoError(t, err)
	second, err := svc.Remaining(context.Background(), "2025-01-01", "06:00-08:00")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, repo.sumCalls, "every call re-queries the store, no caching")
}
