package create_payment_intent

import (
	"context"

	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
	"github.com/m04kA/TennisCourt-BookingService/internal/integrations/stripegateway"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// PaymentGateway интерфейс платёжного провайдера
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, bookingID int64) (*stripegateway.Intent, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
