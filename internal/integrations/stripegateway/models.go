package stripegateway

// Intent созданный платёж на стороне провайдера
type Intent struct {
	ID           string
	ClientSecret string
}

// EventTypePaymentSucceeded тип события успешной оплаты
const EventTypePaymentSucceeded = "payment_intent.succeeded"

// WebhookEvent проверенное (подпись валидна) событие от провайдера
type WebhookEvent struct {
	ID        string
	Type      string
	BookingID int64 // из metadata PaymentIntent'а; 0 для событий без metadata
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
