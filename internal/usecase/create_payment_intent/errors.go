package create_payment_intent

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("create_payment_intent: booking not found")

	// ErrAlreadyPaid возвращается при попытке оплатить уже оплаченное бронирование
	ErrAlreadyPaid = errors.New("create_payment_intent: booking is already paid")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_payment_intent: internal error")
)
