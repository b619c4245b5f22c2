package confirm_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено.
	// Вызывающая сторона логирует и подтверждает приём уведомления:
	// оплата на стороне провайдера уже прошла, ретраи ничего не исправят.
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
