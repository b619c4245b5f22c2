package reserve_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/TennisCourt-BookingService/internal/infra/storage/booking"
)

// UseCase use case временного бронирования слота (hold до оплаты)
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	window       domain.BookingWindow
	holdDuration time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	window domain.BookingWindow,
	holdMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		window:       window,
		holdDuration: time.Duration(holdMinutes) * time.Minute,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования.
// Проверка конфликта и вставка hold'а идут в одной сериализуемой транзакции:
// из двух одновременных reserve на один слот успешным будет максимум один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveSlot: date=%s, time=%s, email=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем окно бронирования
	if !uc.window.Contains(req.Date) {
		uc.logger.Warn("ReserveSlot: date %s is outside booking window", req.Date.Format(domain.DateFormat))
		return nil, ErrDateOutsideWindow
	}

	reservedUntil := now.Add(uc.holdDuration)

	var result *domain.Booking

	// 4. Критическая секция: check-then-insert в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Снимаем просроченный hold со слота, если он остался после
		// последнего sweep — иначе вставка упрётся в уникальный индекс
		if err := uc.bookingRepo.ReleaseExpiredHold(txCtx, req.Date, req.StartTime, now); err != nil {
			uc.logger.Error("ReserveSlot: failed to release expired hold: %v", err)
			return fmt.Errorf("%w: failed to release expired hold: %v", ErrInternal, err)
		}

		// 4.2. Проверяем активный конфликт (строка блокируется FOR UPDATE)
		_, err := uc.bookingRepo.FindActiveConflict(txCtx, req.Date, req.StartTime, now)
		if err == nil {
			uc.logger.Warn("ReserveSlot: slot %s %s already taken",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotTaken
		}
		if !errors.Is(err, bookingRepo.ErrNoActiveBooking) {
			uc.logger.Error("ReserveSlot: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		// 4.3. Вставляем hold
		booking := &domain.Booking{
			Date:          req.Date,
			StartTime:     req.StartTime,
			Name:          req.Name,
			Phone:         req.Phone,
			Email:         req.Email,
			Paid:          false,
			ReservedUntil: &reservedUntil,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// Гонку поймал уникальный индекс
				uc.logger.Warn("ReserveSlot: lost race for slot %s %s",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("ReserveSlot: failed to create hold: %v", err)
			return fmt.Errorf("%w: failed to create hold: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReserveSlot: hold created: booking_id=%d, reserved_until=%s",
		result.ID, reservedUntil.Format(time.RFC3339))

	return &Response{
		BookingID:     result.ID,
		ReservedUntil: reservedUntil,
	}, nil
}
