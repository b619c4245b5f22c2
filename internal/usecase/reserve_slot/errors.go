package reserve_slot

import "errors"

var (
	// ErrInvalidInput возвращается при пустых или некорректных полях запроса
	ErrInvalidInput = errors.New("reserve_slot: invalid input data")

	// ErrDateOutsideWindow возвращается, когда дата вне окна бронирования
	ErrDateOutsideWindow = errors.New("reserve_slot: date is outside the booking window")

	// ErrSlotTaken возвращается, когда слот уже оплачен или удерживается
	ErrSlotTaken = errors.New("reserve_slot: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_slot: internal error")
)
