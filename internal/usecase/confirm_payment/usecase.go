package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/TennisCourt-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/TennisCourt-BookingService/internal/integrations/mailqueue"
)

// UseCase use case финализации бронирования после оплаты
type UseCase struct {
	bookingRepo BookingRepository
	mailer      MailPublisher // может быть nil, если брокер не сконфигурирован
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, mailer MailPublisher, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

// Execute переводит бронирование hold → paid.
// Идемпотентен: повторное подтверждение уже оплаченного бронирования — no-op
// (плюс максимум одна попытка письма на вызов). Просроченный hold не мешает
// подтверждению: оплата могла легитимно прийти позже истечения hold'а.
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) error {
	uc.logger.Info("ConfirmPayment: booking_id=%d", bookingID)

	// 1. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to get booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.Paid {
		uc.logger.Info("ConfirmPayment: booking id=%d already paid", bookingID)
	}

	// 2. Помечаем оплаченным (идемпотентно)
	if err := uc.bookingRepo.MarkPaid(ctx, bookingID); err != nil {
		uc.logger.Error("ConfirmPayment: failed to mark booking id=%d paid: %v", bookingID, err)
		return fmt.Errorf("%w: failed to mark paid: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmPayment: booking id=%d confirmed (date=%s, time=%s)",
		bookingID, booking.Date.Format(domain.DateFormat), booking.StartTime)

	// 3. Письмо-подтверждение: best effort, ошибка не ломает подтверждение
	uc.sendConfirmationMail(ctx, booking)

	return nil
}

func (uc *UseCase) sendConfirmationMail(ctx context.Context, booking *domain.Booking) {
	if uc.mailer == nil {
		uc.logger.Warn("ConfirmPayment: mail publisher not configured, skipping confirmation mail for booking id=%d", booking.ID)
		return
	}

	msg := mailqueue.ConfirmationEmail{
		RecipientEmail: booking.Email,
		BookingID:      booking.ID,
		Date:           booking.Date.Format(domain.DateFormat),
		StartTime:      booking.StartTime.String(),
	}

	if err := uc.mailer.PublishBookingConfirmed(ctx, msg); err != nil {
		uc.logger.Error("ConfirmPayment: failed to publish confirmation mail for booking id=%d: %v", booking.ID, err)
	}
}
