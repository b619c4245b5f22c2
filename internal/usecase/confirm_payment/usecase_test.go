package confirm_payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/TennisCourt-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/TennisCourt-BookingService/internal/integrations/mailqueue"
	"github.com/m04kA/TennisCourt-BookingService/pkg/ptr"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	booking     *domain.Booking
	getErr      error
	markPaidErr error
	markedPaid  []int64
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.booking, nil
}

func (r *fakeBookingRepo) MarkPaid(_ context.Context, id int64) error {
	if r.markPaidErr != nil {
		return r.markPaidErr
	}
	r.markedPaid = append(r.markedPaid, id)
	r.booking.Paid = true
	r.booking.ReservedUntil = nil
	return nil
}

type fakeMailPublisher struct {
	published  []mailqueue.ConfirmationEmail
	publishErr error
}

func (p *fakeMailPublisher) PublishBookingConfirmed(_ context.Context, msg mailqueue.ConfirmationEmail) error {
	if p.publishErr != nil {
		return p.publishErr
	}
	p.published = append(p.published, msg)
	return nil
}

func heldBooking(now time.Time) *domain.Booking {
	return &domain.Booking{
		ID:            42,
		Date:          time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "18:30",
		Email:         "anna@example.com",
		Paid:          false,
		ReservedUntil: ptr.Ptr(now.Add(5 * time.Minute)),
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{booking: heldBooking(now)}
	mailer := &fakeMailPublisher{}

	uc := NewUseCase(repo, mailer, fakeLogger{})

	err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, []int64{42}, repo.markedPaid)
	assert.True(t, repo.booking.Paid)
	assert.Nil(t, repo.booking.ReservedUntil)

	require.Len(t, mailer.published, 1)
	assert.Equal(t, "anna@example.com", mailer.published[0].RecipientEmail)
	assert.Equal(t, int64(42), mailer.published[0].BookingID)
	assert.Equal(t, "2026-04-15", mailer.published[0].Date)
	assert.Equal(t, "18:30", mailer.published[0].StartTime)
}

func TestExecute_IdempotentOnAlreadyPaid(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{booking: heldBooking(now)}
	mailer := &fakeMailPublisher{}

	uc := NewUseCase(repo, mailer, fakeLogger{})

	require.NoError(t, uc.Execute(context.Background(), 42))
	require.NoError(t, uc.Execute(context.Background(), 42))

	// Повторный вызов тоже успешен, письмо уходит не более одного раза за вызов
	assert.True(t, repo.booking.Paid)
	assert.Len(t, mailer.published, 2)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := NewUseCase(repo, &fakeMailPublisher{}, fakeLogger{})

	err := uc.Execute(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_MailFailureDoesNotFailConfirmation(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{booking: heldBooking(now)}
	mailer := &fakeMailPublisher{publishErr: errors.New("broker unavailable")}

	uc := NewUseCase(repo, mailer, fakeLogger{})

	err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, repo.booking.Paid)
}

func TestExecute_NilMailerTolerated(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{booking: heldBooking(now)}

	uc := NewUseCase(repo, nil, fakeLogger{})

	err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, repo.booking.Paid)
}

func TestExecute_ExpiredHoldStillConfirms(t *testing.T) {
	// Оплата могла прийти после истечения hold'а — подтверждаем всё равно
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	booking := heldBooking(now)
	booking.ReservedUntil = ptr.Ptr(now.Add(-time.Hour))
	repo := &fakeBookingRepo{booking: booking}

	uc := NewUseCase(repo, &fakeMailPublisher{}, fakeLogger{})

	err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, repo.booking.Paid)
}

func TestExecute_MarkPaidFailure(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{
		booking:     heldBooking(now),
		markPaidErr: errors.New("connection reset"),
	}
	mailer := &fakeMailPublisher{}

	uc := NewUseCase(repo, mailer, fakeLogger{})

	err := uc.Execute(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInternal)
	// Письмо не отправляется, если оплата не зафиксирована
	assert.Empty(t, mailer.published)
}
