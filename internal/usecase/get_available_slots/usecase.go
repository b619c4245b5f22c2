package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
	"github.com/m04kA/TennisCourt-BookingService/pkg/types"
)

// UseCase use case получения доступных слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	window       domain.BookingWindow
	schedule     domain.Schedule
	slotMinutes  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	window domain.BookingWindow,
	schedule domain.Schedule,
	slotMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		window:       window,
		schedule:     schedule,
		slotMinutes:  slotMinutes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// "Сейчас" фиксируется один раз на весь вызов: генерация, sweep и фильтрация
// активных бронирований видят один и тот же момент времени.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время (единый снапшот на весь вызов)
	now := uc.timeProvider.Now()

	// 3. Дата вне окна бронирования — пустой список, не ошибка
	if !uc.window.Contains(req.Date) {
		uc.logger.Info("GetAvailableSlots: date %s is outside booking window", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: []types.TimeString{}}, nil
	}

	// 4. Оппортунистический sweep просроченных hold'ов.
	// Ошибка не фатальна: фильтрация ниже и так проверяет reserved_until > now.
	if err := uc.bookingRepo.SweepExpired(ctx, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: sweep of expired holds failed: %v", err)
	}

	// 5. Генерируем все слоты дня по расписанию (будни/выходные)
	allSlots, err := generateTimeSlots(uc.schedule.HoursFor(req.Date), uc.slotMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 6. Получаем бронирования на дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Вычитаем слоты с активными бронированиями
	available := subtractBooked(allSlots, bookings, now)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for date=%s",
		len(available), len(allSlots), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: available}, nil
}
