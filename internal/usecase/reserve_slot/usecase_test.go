package reserve_slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/TennisCourt-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/TennisCourt-BookingService/pkg/types"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

// fakeTxManager исполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeBookingRepo struct {
	conflict    *domain.Booking
	conflictErr error
	releaseErr  error
	createErr   error
	created     *domain.Booking
	nextID      int64
}

func (r *fakeBookingRepo) FindActiveConflict(_ context.Context, _ time.Time, _ types.TimeString, _ time.Time) (*domain.Booking, error) {
	if r.conflictErr != nil {
		return nil, r.conflictErr
	}
	return r.conflict, nil
}

func (r *fakeBookingRepo) ReleaseExpiredHold(_ context.Context, _ time.Time, _ types.TimeString, _ time.Time) error {
	return r.releaseErr
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *b
	created.ID = r.nextID
	r.created = &created
	return &created, nil
}

func testWindow() domain.BookingWindow {
	return domain.BookingWindow{
		Start: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
	}
}

func validRequest() *Request {
	return &Request{
		Date:      time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "18:30",
		Name:      "Anna",
		Phone:     "+49123456789",
		Email:     "anna@example.com",
	}
}

func newTestUseCase(repo *fakeBookingRepo, tx *fakeTxManager, now time.Time) *UseCase {
	repo.conflictErr = firstNonNil(repo.conflictErr, bookingRepo.ErrNoActiveBooking)
	uc := NewUseCase(repo, tx, testWindow(), 10, fakeLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func firstNonNil(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{nextID: 42}
	tx := &fakeTxManager{}

	uc := newTestUseCase(repo, tx, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, now.Add(10*time.Minute), resp.ReservedUntil)
	assert.Equal(t, 1, tx.calls)

	require.NotNil(t, repo.created)
	assert.False(t, repo.created.Paid)
	require.NotNil(t, repo.created.ReservedUntil)
	assert.Equal(t, now.Add(10*time.Minute), *repo.created.ReservedUntil)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "invalid time", mutate: func(r *Request) { r.StartTime = "half past six" }},
		{name: "blank name", mutate: func(r *Request) { r.Name = "   " }},
		{name: "blank phone", mutate: func(r *Request) { r.Phone = "" }},
		{name: "blank email", mutate: func(r *Request) { r.Email = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{nextID: 1}
			tx := &fakeTxManager{}
			uc := newTestUseCase(repo, tx, now)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			// До транзакции дело не доходит
			assert.Equal(t, 0, tx.calls)
		})
	}
}

func TestExecute_DateOutsideWindow(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	tx := &fakeTxManager{}
	uc := newTestUseCase(&fakeBookingRepo{}, tx, now)

	req := validRequest()
	req.Date = time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateOutsideWindow)
	assert.Equal(t, 0, tx.calls)
}

func TestExecute_SlotTaken(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{
		conflict:    &domain.Booking{ID: 7, Paid: true},
		conflictErr: nil,
	}
	// conflictErr остаётся nil: конфликт найден
	uc := NewUseCase(repo, &fakeTxManager{}, testWindow(), 10, fakeLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, repo.created)
}

func TestExecute_LostRaceOnInsert(t *testing.T) {
	// Конфликт не найден, но вставка упёрлась в уникальный индекс
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeTxManager{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ConflictCheckFailure(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{conflictErr: errors.New("connection reset")}
	uc := newTestUseCase(repo, &fakeTxManager{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ReleaseExpiredHoldFailure(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{releaseErr: errors.New("connection reset")}
	uc := newTestUseCase(repo, &fakeTxManager{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, repo.created)
}
