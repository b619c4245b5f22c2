package create_payment_intent

// Request модель запроса на создание платежа
type Request struct {
	BookingID int64
}

// Response ссылка на платёж провайдера для фронтенда
type Response struct {
	ClientSecret string
}
