package create_payment_intent

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/TennisCourt-BookingService/internal/infra/storage/booking"
)

// UseCase use case создания платежа за бронирование.
// Обращение к провайдеру идёт вне каких-либо транзакций БД.
type UseCase struct {
	bookingRepo BookingRepository
	gateway     PaymentGateway
	priceCents  int64
	currency    string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	priceCents int64,
	currency string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		gateway:     gateway,
		priceCents:  priceCents,
		currency:    currency,
		logger:      logger,
	}
}

// Execute создает PaymentIntent для бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePaymentIntent: booking_id=%d", req.BookingID)

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CreatePaymentIntent: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CreatePaymentIntent: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.Paid {
		uc.logger.Warn("CreatePaymentIntent: booking id=%d already paid", req.BookingID)
		return nil, ErrAlreadyPaid
	}

	intent, err := uc.gateway.CreateIntent(ctx, uc.priceCents, uc.currency, booking.ID)
	if err != nil {
		uc.logger.Error("CreatePaymentIntent: gateway error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: gateway error: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePaymentIntent: intent %s created for booking id=%d", intent.ID, req.BookingID)

	return &Response{ClientSecret: intent.ClientSecret}, nil
}
