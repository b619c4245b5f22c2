package stripegateway

import "errors"

var (
	// ErrSignatureVerification возвращается при невалидной подписи webhook'а.
	// Уведомление с такой ошибкой не должно менять состояние бронирований.
	ErrSignatureVerification = errors.New("stripegateway: webhook signature verification failed")

	// ErrMissingBookingID возвращается, когда в событии нет booking_id в metadata
	ErrMissingBookingID = errors.New("stripegateway: event has no booking_id metadata")

	// ErrCreateIntent возвращается при ошибке создания PaymentIntent
	ErrCreateIntent = errors.New("stripegateway: failed to create payment intent")
)
