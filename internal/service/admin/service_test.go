package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/TennisCourt-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/TennisCourt-BookingService/pkg/ptr"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	listErr   error
	deleteErr error
	deleted   []int64
}

func (r *fakeBookingRepo) ListAll(_ context.Context) ([]*domain.Booking, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.bookings, nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func TestListBookings(t *testing.T) {
	reservedUntil := time.Date(2026, 4, 15, 12, 10, 0, 0, time.UTC)
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				ID:        1,
				Date:      time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
				StartTime: "18:30",
				Name:      "Anna",
				Phone:     "+49123456789",
				Email:     "anna@example.com",
				Paid:      true,
			},
			{
				ID:            2,
				Date:          time.Date(2026, 4, 16, 0, 0, 0, 0, time.UTC),
				StartTime:     "09:00",
				Name:          "Boris",
				Phone:         "+49987654321",
				Email:         "boris@example.com",
				Paid:          false,
				ReservedUntil: &reservedUntil,
			},
		},
	}

	svc := NewService(repo, fakeLogger{})

	records, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int64(1), records[0].ID)
	assert.True(t, records[0].Paid)
	assert.Nil(t, records[0].ReservedUntil)

	assert.Equal(t, int64(2), records[1].ID)
	assert.False(t, records[1].Paid)
	require.NotNil(t, records[1].ReservedUntil)
}

func TestListBookings_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo, fakeLogger{})

	_, err := svc.ListBookings(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestDeleteBooking(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 5, Paid: false, ReservedUntil: ptr.Ptr(time.Now())},
		},
	}
	svc := NewService(repo, fakeLogger{})

	err := svc.DeleteBooking(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.deleted)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{deleteErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, fakeLogger{})

	err := svc.DeleteBooking(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
