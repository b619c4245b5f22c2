package mailqueue

// ConfirmationEmail сообщение для notification-сервиса об успешной оплате.
// Отправка письма выполняется консьюмером очереди, не этим сервисом.
type ConfirmationEmail struct {
	RecipientEmail string `json:"recipient_email"`
	BookingID      int64  `json:"booking_id"`
	Date           string `json:"date"` // YYYY-MM-DD
	StartTime      string `json:"start_time"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
