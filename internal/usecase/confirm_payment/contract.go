package confirm_payment

import (
	"context"

	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
	"github.com/m04kA/TennisCourt-BookingService/internal/integrations/mailqueue"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	MarkPaid(ctx context.Context, id int64) error
}

// MailPublisher интерфейс публикации письма-подтверждения
type MailPublisher interface {
	PublishBookingConfirmed(ctx context.Context, msg mailqueue.ConfirmationEmail) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
