package payment_webhook

import (
	"context"

	"github.com/m04kA/TennisCourt-BookingService/internal/integrations/stripegateway"
)

// PaymentGateway интерфейс проверки webhook-уведомлений
type PaymentGateway interface {
	VerifyWebhook(payload []byte, sigHeader string) (*stripegateway.WebhookEvent, error)
}

// ConfirmPaymentUseCase интерфейс финализации оплаты
type ConfirmPaymentUseCase interface {
	Execute(ctx context.Context, bookingID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
